package rules

import (
	"maps"
	"slices"
)

// Validate runs the rule set against the input in two passes: a filter pass
// that builds the sanitized data map, then a check pass that reads it. The
// input and the rule set are never mutated.
//
// A non-nil error means the rule set itself is malformed and no Result is
// produced. Failed checks are not errors; they are collected per field
// inside the Result.
func Validate(input map[string]any, rs RuleSet) (*Result, error) {
	if err := rs.check(); err != nil {
		return nil, err
	}

	fields := rs.Fields
	allFields := len(fields) == 0
	if allFields {
		// Sorted only to make map iteration deterministic; set semantics
		// are unaffected.
		fields = slices.Sorted(maps.Keys(input))
	}

	data := make(map[string]any, len(fields))
	for _, field := range fields {
		value, ok := input[field]
		if !ok {
			// Absent keys get no data entry, but the check pass still
			// visits them so definedness checks can report the absence.
			continue
		}
		filtered, err := applyFilters(rs.Filters, field, value)
		if err != nil {
			return nil, err
		}
		data[field] = filtered
	}

	errs := make(map[string]string)
	for _, field := range fields {
		msg, err := firstError(rs.Checks, data, field)
		if err != nil {
			return nil, err
		}
		if msg == "" {
			continue
		}
		// First recorded message wins when the working list names a field
		// more than once.
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}

	return &Result{
		success:   len(errs) == 0,
		allFields: allFields,
		declared:  slices.Clone(rs.Fields),
		data:      data,
		errs:      errs,
	}, nil
}
