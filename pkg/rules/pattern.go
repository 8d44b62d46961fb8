package rules

import (
	"regexp"
	"slices"
)

type patternKind int

const (
	patternNone patternKind = iota
	patternExact
	patternAnyOf
	patternRegexp
)

// Pattern decides whether a rule applies to a field name. Construct one with
// Exact, AnyOf, or Match; the zero value matches nothing.
type Pattern struct {
	kind  patternKind
	exact string
	names []string
	re    *regexp.Regexp
}

// Exact returns a pattern matching a single field name verbatim.
func Exact(name string) Pattern {
	return Pattern{kind: patternExact, exact: name}
}

// AnyOf returns a pattern matching any of the listed field names.
func AnyOf(names ...string) Pattern {
	return Pattern{kind: patternAnyOf, names: slices.Clone(names)}
}

// Match returns a pattern matching field names against a regular expression.
func Match(re *regexp.Regexp) Pattern {
	return Pattern{kind: patternRegexp, re: re}
}

// Matches reports whether the pattern applies to the given field name.
// Pure function, no side effects.
func (p Pattern) Matches(field string) bool {
	switch p.kind {
	case patternExact:
		return p.exact == field
	case patternAnyOf:
		return slices.Contains(p.names, field)
	case patternRegexp:
		return p.re != nil && p.re.MatchString(field)
	default:
		return false
	}
}
