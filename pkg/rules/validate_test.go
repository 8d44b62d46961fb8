package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/rules"
)

// required is a minimal inline check: absent or empty values fail.
func required(v any, _ map[string]any, _ string) string {
	if v == nil || v == "" {
		return "Required"
	}
	return ""
}

func minLength(min int) rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		s, _ := v.(string)
		if len(s) < min {
			return "Too short"
		}
		return ""
	}
}

func trim(v any) any {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func upper(v any) any {
	s, _ := v.(string)
	return strings.ToUpper(s)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("collects first error and keeps all data", func(t *testing.T) {
		t.Parallel()

		rs := rules.RuleSet{
			Fields: []string{"a", "b"},
			Checks: []rules.CheckRule{
				{Pattern: rules.Exact("a"), Action: rules.CheckFn(required)},
			},
		}

		res, err := rules.Validate(map[string]any{"a": "", "b": "x"}, rs)
		require.NoError(t, err)

		assert.False(t, res.Success())
		assert.Equal(t, map[string]any{"a": "", "b": "x"}, res.Data())
		assert.Equal(t, map[string]string{"a": "Required"}, res.Errors())
	})

	t.Run("filter chain runs fully before checks", func(t *testing.T) {
		t.Parallel()

		rs := rules.RuleSet{
			Fields: []string{"a"},
			Filters: []rules.FilterRule{
				{
					Pattern: rules.Exact("a"),
					Action:  rules.FilterChain(rules.FilterFn(trim), rules.FilterFn(upper)),
				},
			},
			Checks: []rules.CheckRule{
				{Pattern: rules.Exact("a"), Action: rules.CheckFn(required)},
			},
		}

		res, err := rules.Validate(map[string]any{"a": "  hi  "}, rs)
		require.NoError(t, err)

		assert.True(t, res.Success())
		assert.Equal(t, map[string]any{"a": "HI"}, res.Data())
		assert.Empty(t, res.Errors())
	})

	t.Run("empty fields list means all input keys", func(t *testing.T) {
		t.Parallel()

		equalsB := func(v any, data map[string]any, _ string) string {
			if v != data["b"] {
				return "Must match b"
			}
			return ""
		}

		rs := rules.RuleSet{
			Fields: []string{},
			Checks: []rules.CheckRule{
				{Pattern: rules.Exact("a"), Action: rules.CheckFn(equalsB)},
			},
		}

		res, err := rules.Validate(map[string]any{"a": "1", "b": "1"}, rs)
		require.NoError(t, err)

		assert.True(t, res.Success())
		assert.Equal(t, map[string]any{"a": "1", "b": "1"}, res.Data())
		assert.Empty(t, res.Errors())
	})

	t.Run("nil fields list is a configuration error", func(t *testing.T) {
		t.Parallel()

		res, err := rules.Validate(map[string]any{"a": "1"}, rules.RuleSet{})
		require.ErrorIs(t, err, rules.ErrMissingFields)
		assert.Nil(t, res)
	})

	t.Run("check chain short-circuits on first message", func(t *testing.T) {
		t.Parallel()

		invoked := false
		spy := func(v any, data map[string]any, field string) string {
			invoked = true
			return minLength(5)(v, data, field)
		}

		rs := rules.RuleSet{
			Fields: []string{"a"},
			Checks: []rules.CheckRule{
				{
					Pattern: rules.Exact("a"),
					Action:  rules.CheckChain(rules.CheckFn(required), rules.CheckFn(spy)),
				},
			},
		}

		res, err := rules.Validate(map[string]any{"a": ""}, rs)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"a": "Required"}, res.Errors())
		assert.False(t, invoked, "later checks must not run after a failure")
	})

	t.Run("check chain passes when every routine passes", func(t *testing.T) {
		t.Parallel()

		rs := rules.RuleSet{
			Fields: []string{"a"},
			Checks: []rules.CheckRule{
				{
					Pattern: rules.Exact("a"),
					Action:  rules.CheckChain(rules.CheckFn(required), rules.CheckFn(minLength(2))),
				},
			},
		}

		res, err := rules.Validate(map[string]any{"a": "hello"}, rs)
		require.NoError(t, err)
		assert.True(t, res.Success())
	})

	t.Run("nested chains keep their semantics at every level", func(t *testing.T) {
		t.Parallel()

		exclaim := func(v any) any { return v.(string) + "!" }

		rs := rules.RuleSet{
			Fields: []string{"a"},
			Filters: []rules.FilterRule{
				{
					Pattern: rules.Exact("a"),
					Action: rules.FilterChain(
						rules.FilterFn(trim),
						rules.FilterChain(rules.FilterFn(upper), rules.FilterFn(exclaim)),
					),
				},
			},
		}

		res, err := rules.Validate(map[string]any{"a": " hi "}, rs)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "HI!"}, res.Data())
	})

	t.Run("multiple matching filter rules apply in declaration order", func(t *testing.T) {
		t.Parallel()

		rs := rules.RuleSet{
			Fields: []string{"a"},
			Filters: []rules.FilterRule{
				{Pattern: rules.Exact("a"), Action: rules.FilterFn(trim)},
				{Pattern: rules.AnyOf("a", "b"), Action: rules.FilterFn(upper)},
			},
		}

		res, err := rules.Validate(map[string]any{"a": " hi "}, rs)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "HI"}, res.Data())
	})

	t.Run("first matching check rule wins across independent rules", func(t *testing.T) {
		t.Parallel()

		first := func(any, map[string]any, string) string { return "first" }
		second := func(any, map[string]any, string) string { return "second" }

		rs := rules.RuleSet{
			Fields: []string{"a"},
			Checks: []rules.CheckRule{
				{Pattern: rules.Exact("a"), Action: rules.CheckFn(first)},
				{Pattern: rules.Exact("a"), Action: rules.CheckFn(second)},
			},
		}

		res, err := rules.Validate(map[string]any{"a": "x"}, rs)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "first"}, res.Errors())
	})

	t.Run("absent field is skipped by filters but visible to checks", func(t *testing.T) {
		t.Parallel()

		rs := rules.RuleSet{
			Fields: []string{"a", "b"},
			Filters: []rules.FilterRule{
				{Pattern: rules.AnyOf("a", "b"), Action: rules.FilterFn(trim)},
			},
			Checks: []rules.CheckRule{
				{Pattern: rules.AnyOf("a", "b"), Action: rules.CheckFn(required)},
			},
		}

		res, err := rules.Validate(map[string]any{"a": " x "}, rs)
		require.NoError(t, err)

		assert.False(t, res.Success())
		assert.Equal(t, map[string]any{"a": "x"}, res.Data(), "absent key must not enter data")
		assert.Equal(t, map[string]string{"b": "Required"}, res.Errors())
	})

	t.Run("present nil value counts as present", func(t *testing.T) {
		t.Parallel()

		rs := rules.RuleSet{
			Fields: []string{"a"},
		}

		res, err := rules.Validate(map[string]any{"a": nil}, rs)
		require.NoError(t, err)

		data := res.Data()
		_, ok := data["a"]
		assert.True(t, ok, "explicitly present nil still enters data")
		assert.Nil(t, data["a"])
	})

	t.Run("checks read the filtered value not the raw input", func(t *testing.T) {
		t.Parallel()

		var seen any
		capture := func(v any, _ map[string]any, _ string) string {
			seen = v
			return ""
		}

		rs := rules.RuleSet{
			Fields: []string{"a"},
			Filters: []rules.FilterRule{
				{Pattern: rules.Exact("a"), Action: rules.FilterFn(upper)},
			},
			Checks: []rules.CheckRule{
				{Pattern: rules.Exact("a"), Action: rules.CheckFn(capture)},
			},
		}

		_, err := rules.Validate(map[string]any{"a": "hi"}, rs)
		require.NoError(t, err)
		assert.Equal(t, "HI", seen)
	})

	t.Run("zero value action aborts the call", func(t *testing.T) {
		t.Parallel()

		rs := rules.RuleSet{
			Fields: []string{"a"},
			Filters: []rules.FilterRule{
				{Pattern: rules.Exact("a"), Action: rules.FilterAction{}},
			},
		}

		res, err := rules.Validate(map[string]any{"a": "x"}, rs)
		require.ErrorIs(t, err, rules.ErrInvalidAction)
		assert.Nil(t, res)
	})

	t.Run("input map is never mutated", func(t *testing.T) {
		t.Parallel()

		input := map[string]any{"a": " hi "}
		rs := rules.RuleSet{
			Fields: []string{"a"},
			Filters: []rules.FilterRule{
				{Pattern: rules.Exact("a"), Action: rules.FilterFn(trim)},
			},
		}

		_, err := rules.Validate(input, rs)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": " hi "}, input)
	})

	t.Run("duplicate working field keeps the first recorded error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		counting := func(any, map[string]any, string) string {
			calls++
			if calls == 1 {
				return "first"
			}
			return "second"
		}

		rs := rules.RuleSet{
			Fields: []string{"a", "a"},
			Checks: []rules.CheckRule{
				{Pattern: rules.Exact("a"), Action: rules.CheckFn(counting)},
			},
		}

		res, err := rules.Validate(map[string]any{"a": "x"}, rs)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "first"}, res.Errors())
	})
}
