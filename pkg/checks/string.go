package checks

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formguard/pkg/rules"
)

// Required fails for absent fields and for values that are blank after
// trimming whitespace.
func Required() rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		if strings.TrimSpace(stringValue(v)) == "" {
			return "Required"
		}
		return ""
	}
}

// MinLength fails for values shorter than min runes.
func MinLength(min int) rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		if utf8.RuneCountInString(stringValue(v)) < min {
			return fmt.Sprintf("Must be at least %d characters", min)
		}
		return ""
	}
}

// MaxLength fails for values longer than max runes.
func MaxLength(max int) rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		if utf8.RuneCountInString(stringValue(v)) > max {
			return fmt.Sprintf("Must be at most %d characters", max)
		}
		return ""
	}
}

// Length fails for values whose rune count differs from exact.
func Length(exact int) rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		if utf8.RuneCountInString(stringValue(v)) != exact {
			return fmt.Sprintf("Must be exactly %d characters", exact)
		}
		return ""
	}
}
