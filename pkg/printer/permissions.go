package printer

import (
	"fmt"
	"strings"

	"github.com/berkguzel/sls-policy/pkg/types"
	"github.com/fatih/color"
)

var (
	green     = color.New(color.FgGreen).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
	bold      = color.New(color.Bold).SprintFunc()
	checkmark = green("✅")
	warning   = yellow("⚠️")
	danger    = red("❌")
)

func permissionIcon(perm types.PermissionDisplay) string {
	switch {
	case perm.IsHighRisk:
		return danger
	case perm.IsBroad:
		return warning
	default:
		return checkmark
	}
}

// Helper function to format permission details
func formatPermissionDetails(perm types.PermissionDisplay) string {
	if perm.IsHighRisk {
		return fmt.Sprintf("%s %s on %s (full service access)",
			danger,
			perm.Action,
			formatResource(perm.Resource),
		)
	}
	return fmt.Sprintf("%s %s on %s",
		permissionIcon(perm),
		perm.Action,
		formatResource(perm.Resource),
	)
}

func formatResource(resource string) string {
	if resource == "*" {
		return "all resources"
	}
	return resource
}

// truncateString shortens s to maxLen runes, never splitting a rune.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

func scopeLabel(perm types.PermissionDisplay) string {
	switch {
	case perm.IsHighRisk:
		return "FULL"
	case perm.IsBroad:
		return "WILDCARD"
	default:
		return "SCOPED"
	}
}

func separator(actionWidth, resourceWidth int) string {
	return fmt.Sprintf("+%s+%s+----------+",
		strings.Repeat("-", actionWidth+2),
		strings.Repeat("-", resourceWidth+2))
}
