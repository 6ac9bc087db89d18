package printer

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/berkguzel/sls-policy/pkg/types"
)

const (
	actionWidth      = 38
	minResourceWidth = 52
	maxResourceWidth = 90
)

type Printer struct {
	writer io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// Print writes the permissions table for a generated policy.
func (p *Printer) Print(summary types.Summary) {
	fmt.Fprintf(p.writer, "\n%s Policy written to %s\n", bold("→"), summary.Path)
	fmt.Fprintf(p.writer, "  Statements: %d, permissions: %d, full service grants: %d\n\n",
		summary.Statements, len(summary.Permissions), summary.HighRisk())

	if len(summary.Permissions) == 0 {
		fmt.Fprintln(p.writer, "  No permissions granted")
		return
	}

	resourceWidth := minResourceWidth
	for _, perm := range summary.Permissions {
		if n := utf8.RuneCountInString(perm.Resource); n > resourceWidth {
			resourceWidth = n
		}
	}
	if resourceWidth > maxResourceWidth {
		resourceWidth = maxResourceWidth
	}

	fmt.Fprintln(p.writer, separator(actionWidth, resourceWidth))
	fmt.Fprintf(p.writer, "| %-*s | %-*s | %-8s |\n",
		actionWidth, "ACTION",
		resourceWidth, "RESOURCE",
		"SCOPE",
	)
	fmt.Fprintln(p.writer, separator(actionWidth, resourceWidth))

	for _, perm := range summary.Permissions {
		fmt.Fprintf(p.writer, "| %-*s | %-*s | %-8s |\n",
			actionWidth, truncateString(perm.Action, actionWidth),
			resourceWidth, truncateString(perm.Resource, resourceWidth),
			scopeLabel(perm),
		)
	}

	fmt.Fprintln(p.writer, separator(actionWidth, resourceWidth))

	if summary.HighRisk() > 0 {
		fmt.Fprintln(p.writer, "\n  Full service grants:")
		p.printHighRisk(summary)
	}
}

func (p *Printer) printHighRisk(summary types.Summary) {
	for _, perm := range summary.Permissions {
		if perm.IsHighRisk {
			fmt.Fprintf(p.writer, "    %s\n", formatPermissionDetails(perm))
		}
	}
}
