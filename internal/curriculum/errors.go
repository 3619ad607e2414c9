package curriculum

import (
	"errors"
	"fmt"
)

// Sentinel errors for the validation taxonomy. Callers classify failures
// with errors.Is; the concrete error carries the document path.
var (
	ErrNotFound       = errors.New("curriculum file not found")
	ErrMalformedInput = errors.New("invalid JSON")
	ErrMissingField   = errors.New("missing required field")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrInvalidEnum    = errors.New("invalid enum value")
	ErrEmptyRequired  = errors.New("empty when required")
	ErrDuplicateID    = errors.New("duplicate identifier")
)

// SchemaError reports a single schema violation at a specific path in the
// document. It unwraps to one of the sentinel errors above.
type SchemaError struct {
	Kind   error
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

func (e *SchemaError) Unwrap() error { return e.Kind }

func schemaErr(kind error, path, format string, args ...any) error {
	return &SchemaError{Kind: kind, Path: path, Reason: fmt.Sprintf(format, args...)}
}
