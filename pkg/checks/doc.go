// Package checks provides the built-in check builders for the rules engine.
// Each builder returns a rules.Check closure that inspects a sanitized field
// value and reports a short, caller-visible message on failure, or "" when
// the value passes.
//
//	crs, err := rules.CheckPairs(
//	    "email", []any{rules.CheckFn(checks.Required()), rules.CheckFn(checks.Email())},
//	    "password_confirmation", rules.CheckFn(checks.EqualsField("password")),
//	)
//
// Values are coerced to strings before inspection: nil (an absent field)
// becomes "", strings are used as-is, and everything else goes through
// fmt.Sprint. Builders that take a regular expression treat a nil pattern as
// a rule-construction misuse and panic immediately, long before any input is
// validated.
package checks
