package checks

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/formguard/pkg/rules"
)

// UUID fails for values that are not canonical 36-character UUIDs. Length
// and hyphen positions are tested first to skip the parse for obvious
// non-UUIDs.
func UUID() rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		s := stringValue(v)
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return "Must be a valid UUID"
		}
		if _, err := uuid.Parse(s); err != nil {
			return "Must be a valid UUID"
		}
		return ""
	}
}
