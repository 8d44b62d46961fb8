// Package rules implements a rule-driven sanitization and validation engine
// for flat key/value input such as decoded web form submissions.
//
// A RuleSet names the fields to process and binds field-name patterns to
// filter and check actions. Validate runs two passes over the input: a
// filter pass that transforms values into a sanitized data map, then a check
// pass that inspects the sanitized values and collects at most one error
// message per field. The outcome is a Result holding the sanitized data and
// the per-field errors.
//
// # Patterns
//
// A Pattern selects which fields a rule applies to: an exact name, a set of
// names, or a regular expression. A field may match any number of rules in a
// pass; rules are always applied in declaration order.
//
//	rs := rules.RuleSet{
//	    Fields: []string{"email", "name"},
//	    Filters: []rules.FilterRule{
//	        {Pattern: rules.AnyOf("email", "name"), Action: rules.FilterFn(filters.Trim)},
//	    },
//	    Checks: []rules.CheckRule{
//	        {Pattern: rules.Exact("email"), Action: rules.CheckFn(checks.Email())},
//	    },
//	}
//	res, err := rules.Validate(input, rs)
//
// # Filters and checks
//
// A Filter transforms a value and cannot fail. A Check inspects the filtered
// value, with the whole sanitized data map available for cross-field rules,
// and returns an error message or "" on success. Actions chain: a filter
// chain pipes each output into the next routine, while a check chain runs
// every routine against the same value and stops at the first message.
//
// # Pair lists
//
// FilterPairs and CheckPairs accept the classic alternating pattern/action
// list, including filter names resolved through a Registry:
//
//	frs, err := rules.FilterPairs(filters.NewRegistry(),
//	    "email", []any{"trim", "lower"},
//	    regexp.MustCompile(`_at$`), "trim",
//	)
//
// # Error classes
//
// Malformed rule sets (missing fields slot, uneven pair lists, unsupported
// pattern or action shapes, unknown filter names) surface as Go errors from
// the constructors or from Validate, before or instead of any Result. Failed
// checks are not Go errors; they are ordinary data inside the Result.
//
// The engine is stateless and never mutates the input map or the rule set;
// every call allocates fresh result structures.
package rules
