package checks

import "fmt"

// stringValue coerces an opaque field value for inspection: nil (an absent
// field) becomes "", strings pass through, everything else is rendered with
// fmt.Sprint.
func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}
