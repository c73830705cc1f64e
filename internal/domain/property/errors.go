package property

import "errors"

var (
	ErrNotFound       = errors.New("property not found")
	ErrAgentNotFound  = errors.New("agent not found")
	ErrUnavailable    = errors.New("catalog temporarily unavailable")
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrInvalidDraft   = errors.New("invalid listing draft")
)

// ValidationError carries per-field failures for a rejected input.
type ValidationError struct {
	Err    error
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
