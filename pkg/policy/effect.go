package policy

// Effect is the outcome a statement grants.
type Effect string

const (
	Allow Effect = "Allow"
	Deny  Effect = "Deny"
)

// IsValid reports whether the effect is one IAM understands.
func (e Effect) IsValid() bool {
	switch e {
	case Allow, Deny:
		return true
	default:
		return false
	}
}
