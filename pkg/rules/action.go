package rules

// Filter transforms a field value. Filters cannot fail, only transform.
type Filter func(value any) any

// Check inspects a sanitized field value and returns an error message, or ""
// when the check passes. The full sanitized data map and the field name are
// supplied for cross-field rules.
type Check func(value any, data map[string]any, field string) string

// FilterAction is either a single filter routine or an ordered chain of
// filter actions. The zero value is invalid and surfaces ErrInvalidAction
// when executed.
type FilterAction struct {
	fn    Filter
	chain []FilterAction
}

// FilterFn wraps a single filter routine as an action.
func FilterFn(fn Filter) FilterAction {
	return FilterAction{fn: fn}
}

// FilterChain composes filter actions into a pipeline: the output of each
// action feeds the next, and every action runs. Chains may nest.
func FilterChain(actions ...FilterAction) FilterAction {
	if actions == nil {
		actions = make([]FilterAction, 0)
	}
	return FilterAction{chain: actions}
}

func (a FilterAction) run(value any) (any, error) {
	switch {
	case a.fn != nil:
		return a.fn(value), nil
	case a.chain != nil:
		v := value
		for _, sub := range a.chain {
			next, err := sub.run(v)
			if err != nil {
				return nil, err
			}
			v = next
		}
		return v, nil
	default:
		return nil, ErrInvalidAction
	}
}

// CheckAction is either a single check routine or an ordered chain of check
// actions. The zero value is invalid and surfaces ErrInvalidAction when
// executed.
type CheckAction struct {
	fn    Check
	chain []CheckAction
}

// CheckFn wraps a single check routine as an action.
func CheckFn(fn Check) CheckAction {
	return CheckAction{fn: fn}
}

// CheckChain composes check actions: each runs against the same original
// value, in order, and the first non-empty message stops the chain. Chains
// may nest.
func CheckChain(actions ...CheckAction) CheckAction {
	if actions == nil {
		actions = make([]CheckAction, 0)
	}
	return CheckAction{chain: actions}
}

func (a CheckAction) run(value any, data map[string]any, field string) (string, error) {
	switch {
	case a.fn != nil:
		return a.fn(value, data, field), nil
	case a.chain != nil:
		for _, sub := range a.chain {
			msg, err := sub.run(value, data, field)
			if err != nil {
				return "", err
			}
			if msg != "" {
				return msg, nil
			}
		}
		return "", nil
	default:
		return "", ErrInvalidAction
	}
}
