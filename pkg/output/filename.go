package output

import (
	"fmt"

	"github.com/berkguzel/sls-policy/internal/types"
)

const (
	wildcard = "*"
	// starPlaceholder stands in for a wildcard in file names.
	starPlaceholder = "_star_"
)

// Sanitize makes a stage or region value safe to use in a file name.
func Sanitize(value string) string {
	if value == wildcard {
		return starPlaceholder
	}
	return value
}

// FileName returns {name}-{stage}-{region}-policy.{ext} for the settings.
// The document itself keeps the raw values.
func FileName(s types.Settings, format Format) string {
	return fmt.Sprintf("%s-%s-%s-policy.%s",
		s.Name,
		Sanitize(s.Stage),
		Sanitize(s.Region),
		format.Extension(),
	)
}
