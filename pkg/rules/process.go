package rules

// applyFilters folds every matching filter rule over the field's value, in
// declaration order. A field matched by several independent rules is
// transformed by each in sequence, not just by one chain.
func applyFilters(frs []FilterRule, field string, value any) (any, error) {
	v := value
	for _, fr := range frs {
		if !fr.Pattern.Matches(field) {
			continue
		}
		next, err := fr.Action.run(v)
		if err != nil {
			return nil, err
		}
		v = next
	}
	return v, nil
}

// firstError scans the matching check rules in declaration order against the
// field's already-filtered value and returns the first non-empty message.
// Every rule sees the same value; checks never re-filter.
func firstError(crs []CheckRule, data map[string]any, field string) (string, error) {
	value := data[field]
	for _, cr := range crs {
		if !cr.Pattern.Matches(field) {
			continue
		}
		msg, err := cr.Action.run(value, data, field)
		if err != nil {
			return "", err
		}
		if msg != "" {
			return msg, nil
		}
	}
	return "", nil
}
