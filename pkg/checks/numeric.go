package checks

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/formguard/pkg/rules"
)

// Numeric fails for values that do not parse as a decimal number.
func Numeric() rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		if _, err := strconv.ParseFloat(stringValue(v), 64); err != nil {
			return "Must be a number"
		}
		return ""
	}
}

// IntegerInRange fails for values that are not integers between min and max
// inclusive.
func IntegerInRange(min, max int) rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		n, err := strconv.Atoi(stringValue(v))
		if err != nil || n < min || n > max {
			return fmt.Sprintf("Must be an integer between %d and %d", min, max)
		}
		return ""
	}
}
