package filters

import "github.com/dmitrymomot/formguard/pkg/rules"

// NewRegistry returns a registry seeded with every plain built-in filter
// under its snake_case name. Callers may Register additional filters on top
// or shadow the defaults.
func NewRegistry() *rules.Registry {
	r := rules.NewRegistry()
	for name, fn := range builtins {
		r.Register(name, fn)
	}
	return r
}

var builtins = map[string]rules.Filter{
	"trim":         Trim,
	"lower":        Lower,
	"upper":        Upper,
	"capitalize":   Capitalize,
	"squeeze":      Squeeze,
	"single_line":  SingleLine,
	"digits":       Digits,
	"alpha":        Alpha,
	"alphanumeric": Alphanumeric,
	"strip_html":   StripHTML,
	"snake_case":   SnakeCase,
	"kebab_case":   KebabCase,
	"camel_case":   CamelCase,
}
