package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/berkguzel/sls-policy/pkg/policy"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported output format.
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat accepts a format name case-insensitively. "yml" is an alias
// for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (supported: json, yaml)", s)
}

func (f Format) Extension() string {
	return string(f)
}

// Encode serializes the document. Key order follows the document types,
// so equal documents always encode to equal bytes.
func Encode(doc policy.Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, "failed to encode policy as JSON")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode policy as YAML")
		}
		return data, nil
	}
	return nil, errors.Errorf("unsupported format %q", format)
}
