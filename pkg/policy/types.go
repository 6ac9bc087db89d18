package policy

import (
	"encoding/json"
	"fmt"
)

// Version is the IAM policy language version written into every document.
const Version = "2012-10-17"

type Document struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

type Statement struct {
	Effect   Effect `json:"Effect"`
	Action   Value  `json:"Action"`   // Can be string or []string
	Resource Value  `json:"Resource"` // Can be string or []string
}

// Value is an IAM field that holds either a single string or a list of
// strings. The shape it was built with is the shape it is written in.
type Value struct {
	items  []string
	scalar bool
}

// String returns a Value written as a bare JSON string.
func String(s string) Value {
	return Value{items: []string{s}, scalar: true}
}

// Strings returns a Value written as a JSON array, even with one element.
func Strings(s ...string) Value {
	return Value{items: append([]string(nil), s...)}
}

func (v Value) Items() []string {
	return append([]string(nil), v.items...)
}

func (v Value) IsScalar() bool {
	return v.scalar
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.scalar && len(v.items) == 1 {
		return json.Marshal(v.items[0])
	}
	if v.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.items)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case string:
		*v = String(t)
	case []interface{}:
		items := make([]string, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("unexpected %T in string list", item)
			}
			items[i] = s
		}
		*v = Value{items: items}
	default:
		return fmt.Errorf("expected string or list of strings, got %T", raw)
	}
	return nil
}
