package analyzer

import (
	"sort"
	"strings"

	"github.com/berkguzel/sls-policy/pkg/policy"
	"github.com/berkguzel/sls-policy/pkg/types"
)

// Analyze flattens the allow statements of a document into one row per
// action and resource, high-risk rows first, then broad rows, then by
// action.
func Analyze(doc policy.Document) []types.PermissionDisplay {
	var displays []types.PermissionDisplay

	for _, stmt := range doc.Statement {
		if stmt.Effect != policy.Allow {
			continue
		}

		for _, action := range stmt.Action.Items() {
			for _, resource := range stmt.Resource.Items() {
				displays = append(displays, types.PermissionDisplay{
					Action:     action,
					Resource:   resource,
					Effect:     string(stmt.Effect),
					IsBroad:    isBroad(action, resource),
					IsHighRisk: isHighRiskPermission(action),
				})
			}
		}
	}

	sort.SliceStable(displays, func(i, j int) bool {
		if displays[i].IsHighRisk != displays[j].IsHighRisk {
			return displays[i].IsHighRisk
		}
		if displays[i].IsBroad != displays[j].IsBroad {
			return displays[i].IsBroad
		}
		return displays[i].Action < displays[j].Action
	})

	return displays
}

// Summarize builds the summary printed after a policy is written.
func Summarize(path string, doc policy.Document) types.Summary {
	return types.Summary{
		Path:        path,
		Statements:  len(doc.Statement),
		Permissions: Analyze(doc),
	}
}

func isBroad(action, resource string) bool {
	return strings.Contains(action, "*") || strings.Contains(resource, "*")
}

// isHighRiskPermission reports whether the action grants every operation
// of a service.
func isHighRiskPermission(action string) bool {
	return action == "*" || strings.HasSuffix(action, ":*")
}
