package types

import "fmt"

// PermissionDisplay is one action on one resource, flattened out of a
// statement for display.
type PermissionDisplay struct {
	Action     string
	Resource   string
	Effect     string
	IsBroad    bool
	IsHighRisk bool
}

func (p PermissionDisplay) String() string {
	return fmt.Sprintf("%s %s on %s (Broad: %t, High Risk: %t)",
		p.Effect, p.Action, p.Resource, p.IsBroad, p.IsHighRisk)
}

// Summary describes a generated policy file.
type Summary struct {
	Path        string
	Statements  int
	Permissions []PermissionDisplay
}

func (s Summary) String() string {
	return fmt.Sprintf("Policy: %s with %d statements (%d permissions)",
		s.Path, s.Statements, len(s.Permissions))
}

// HighRisk counts the permissions flagged as high risk.
func (s Summary) HighRisk() int {
	n := 0
	for _, p := range s.Permissions {
		if p.IsHighRisk {
			n++
		}
	}
	return n
}
