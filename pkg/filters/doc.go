// Package filters provides the built-in filter routines for the rules
// engine: whitespace and case normalization, character-class keeps, HTML
// stripping, case-style conversion, and a few parameterized builders.
//
// Every filter is total over opaque values: non-string inputs pass through
// untouched, so a filter chain never has to care what else the caller put in
// the input map.
//
// NewRegistry returns a rules.Registry seeded with every plain built-in
// under its snake_case name, for rule pairs that reference filters by name:
//
//	frs, err := rules.FilterPairs(filters.NewRegistry(),
//	    "email", []any{"trim", "lower"},
//	)
package filters
