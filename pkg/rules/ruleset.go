package rules

import (
	"fmt"
	"regexp"
)

// FilterRule binds a field pattern to a filter action.
type FilterRule struct {
	Pattern Pattern
	Action  FilterAction
}

// CheckRule binds a field pattern to a check action.
type CheckRule struct {
	Pattern Pattern
	Action  CheckAction
}

// RuleSet describes one validation run: which fields to process, how to
// sanitize them, and how to check them. Rules are applied strictly in
// declaration order, and a field may match any number of rules per pass.
type RuleSet struct {
	// Fields lists the field names to process. A non-nil empty slice means
	// "every key of the input at call time". A nil slice is rejected with
	// ErrMissingFields.
	Fields []string

	Filters []FilterRule
	Checks  []CheckRule
}

func (rs RuleSet) check() error {
	if rs.Fields == nil {
		return ErrMissingFields
	}
	return nil
}

// FilterPairs builds filter rules from an alternating pattern/action list.
// Patterns may be a Pattern, a field name, a []string of names, or a
// *regexp.Regexp. Actions may be a FilterAction, a Filter (or bare
// func(any) any), a filter name resolved through reg, or a []any chain of
// any of these, nested arbitrarily. All shape problems are configuration
// errors reported here, before any input is touched.
func FilterPairs(reg *Registry, pairs ...any) ([]FilterRule, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d filter entries", ErrUnevenPairs, len(pairs))
	}

	out := make([]FilterRule, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		pattern, err := coercePattern(pairs[i])
		if err != nil {
			return nil, err
		}
		action, err := coerceFilterAction(reg, pairs[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, FilterRule{Pattern: pattern, Action: action})
	}
	return out, nil
}

// CheckPairs builds check rules from an alternating pattern/action list.
// Patterns accept the same shapes as FilterPairs; actions may be a
// CheckAction, a Check (or bare func(any, map[string]any, string) string),
// or a []any chain, nested arbitrarily.
func CheckPairs(pairs ...any) ([]CheckRule, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d check entries", ErrUnevenPairs, len(pairs))
	}

	out := make([]CheckRule, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		pattern, err := coercePattern(pairs[i])
		if err != nil {
			return nil, err
		}
		action, err := coerceCheckAction(pairs[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, CheckRule{Pattern: pattern, Action: action})
	}
	return out, nil
}

func coercePattern(v any) (Pattern, error) {
	switch p := v.(type) {
	case Pattern:
		return p, nil
	case string:
		return Exact(p), nil
	case []string:
		return AnyOf(p...), nil
	case *regexp.Regexp:
		return Match(p), nil
	default:
		return Pattern{}, fmt.Errorf("%w: %T", ErrInvalidPattern, v)
	}
}

func coerceFilterAction(reg *Registry, v any) (FilterAction, error) {
	switch a := v.(type) {
	case FilterAction:
		return a, nil
	case Filter:
		return FilterFn(a), nil
	case func(any) any:
		return FilterFn(a), nil
	case string:
		if reg == nil {
			return FilterAction{}, fmt.Errorf("%w: %q (no registry supplied)", ErrUnknownFilter, a)
		}
		fn, err := reg.Resolve(a)
		if err != nil {
			return FilterAction{}, err
		}
		return FilterFn(fn), nil
	case []any:
		chain := make([]FilterAction, 0, len(a))
		for _, sub := range a {
			action, err := coerceFilterAction(reg, sub)
			if err != nil {
				return FilterAction{}, err
			}
			chain = append(chain, action)
		}
		return FilterAction{chain: chain}, nil
	default:
		return FilterAction{}, fmt.Errorf("%w: %T", ErrInvalidAction, v)
	}
}

func coerceCheckAction(v any) (CheckAction, error) {
	switch a := v.(type) {
	case CheckAction:
		return a, nil
	case Check:
		return CheckFn(a), nil
	case func(any, map[string]any, string) string:
		return CheckFn(a), nil
	case []any:
		chain := make([]CheckAction, 0, len(a))
		for _, sub := range a {
			action, err := coerceCheckAction(sub)
			if err != nil {
				return CheckAction{}, err
			}
			chain = append(chain, action)
		}
		return CheckAction{chain: chain}, nil
	default:
		return CheckAction{}, fmt.Errorf("%w: %T", ErrInvalidAction, v)
	}
}
