package checks

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/dmitrymomot/formguard/pkg/rules"
)

// OneOf fails for values outside the allowed list.
func OneOf(allowed ...string) rules.Check {
	allowed = slices.Clone(allowed)
	return func(v any, _ map[string]any, _ string) string {
		if slices.Contains(allowed, stringValue(v)) {
			return ""
		}
		return "Not an allowed value"
	}
}

// EqualsField fails when the value differs from the sanitized value of
// another field, e.g. a password confirmation. Comparison uses
// reflect.DeepEqual so opaque values never panic.
func EqualsField(other string) rules.Check {
	return func(v any, data map[string]any, _ string) string {
		if reflect.DeepEqual(v, data[other]) {
			return ""
		}
		return fmt.Sprintf("Must match %s", other)
	}
}
