package rules

import (
	"fmt"
	"maps"
	"slices"
)

// Result carries the outcome of one Validate call: the sanitized data map
// and at most one error message per field.
type Result struct {
	success   bool
	allFields bool
	declared  []string
	data      map[string]any
	errs      map[string]string
}

// Success reports whether no check produced an error message.
func (r *Result) Success() bool {
	return r.success
}

// Data returns a copy of the sanitized data map. Only fields present in the
// input appear here.
func (r *Result) Data() map[string]any {
	return maps.Clone(r.data)
}

// Errors returns a copy of the per-field error map.
func (r *Result) Errors() map[string]string {
	return maps.Clone(r.errs)
}

// DataField returns the sanitized value for one declared field. Asking for a
// field outside the declared set wraps ErrUnknownField, unless the rule set
// ran in all-fields mode, where any name is accepted.
func (r *Result) DataField(name string) (any, error) {
	if err := r.checkDeclared(name); err != nil {
		return nil, err
	}
	return r.data[name], nil
}

// ErrorField returns the recorded error message for one declared field, or
// "" when the field passed. The declared-field restriction of DataField
// applies.
func (r *Result) ErrorField(name string) (string, error) {
	if err := r.checkDeclared(name); err != nil {
		return "", err
	}
	return r.errs[name], nil
}

func (r *Result) checkDeclared(name string) error {
	if r.allFields || slices.Contains(r.declared, name) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ToMap renders the result in the classic {success, data, error} shape.
func (r *Result) ToMap() map[string]any {
	return map[string]any{
		"success": r.success,
		"data":    r.Data(),
		"error":   r.Errors(),
	}
}
