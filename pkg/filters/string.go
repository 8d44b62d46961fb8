package filters

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formguard/pkg/rules"
)

// mapString lifts a string transform over an opaque value: non-string
// values pass through untouched.
func mapString(v any, fn func(string) string) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return fn(s)
}

// Trim removes leading and trailing whitespace.
func Trim(v any) any {
	return mapString(v, strings.TrimSpace)
}

// Lower converts the value to lowercase.
func Lower(v any) any {
	return mapString(v, strings.ToLower)
}

// Upper converts the value to uppercase.
func Upper(v any) any {
	return mapString(v, strings.ToUpper)
}

// Capitalize title-cases the value using Unicode casing rules
// ("hello world" -> "Hello World").
func Capitalize(v any) any {
	return mapString(v, func(s string) string {
		return cases.Title(language.Und).String(s)
	})
}

// Squeeze collapses runs of whitespace into a single space and trims the
// ends.
func Squeeze(v any) any {
	return mapString(v, func(s string) string {
		return strings.TrimSpace(whitespaceRunRegex.ReplaceAllString(s, " "))
	})
}

// SingleLine folds a multi-line value onto one line, normalizing the
// surrounding whitespace.
func SingleLine(v any) any {
	return mapString(v, func(s string) string {
		s = strings.ReplaceAll(s, "\n", " ")
		s = strings.ReplaceAll(s, "\r", " ")
		return strings.TrimSpace(whitespaceRunRegex.ReplaceAllString(s, " "))
	})
}

// Digits keeps only numeric digits.
func Digits(v any) any {
	return mapString(v, func(s string) string {
		return strings.Map(keepOnly(unicode.IsDigit), s)
	})
}

// Alpha keeps only letters and spaces.
func Alpha(v any) any {
	return mapString(v, func(s string) string {
		return strings.Map(keepOnly(unicode.IsLetter, unicode.IsSpace), s)
	})
}

// Alphanumeric keeps only letters, digits, and spaces.
func Alphanumeric(v any) any {
	return mapString(v, func(s string) string {
		return strings.Map(keepOnly(unicode.IsLetter, unicode.IsDigit, unicode.IsSpace), s)
	})
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(v any) any {
	return mapString(v, func(s string) string {
		return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
	})
}

// SnakeCase converts the value to snake_case.
func SnakeCase(v any) any {
	return mapString(v, func(s string) string {
		return delimited(s, '_')
	})
}

// KebabCase converts the value to kebab-case.
func KebabCase(v any) any {
	return mapString(v, func(s string) string {
		return delimited(s, '-')
	})
}

// CamelCase converts the value to camelCase: non-alphanumeric characters
// start a new capitalized word, the first word is lowercased.
func CamelCase(v any) any {
	return mapString(v, camelCase)
}

// Truncate returns a filter that cuts the value to at most max runes.
func Truncate(max int) rules.Filter {
	return func(v any) any {
		return mapString(v, func(s string) string {
			if max <= 0 {
				return ""
			}
			runes := []rune(s)
			if len(runes) <= max {
				return s
			}
			return string(runes[:max])
		})
	}
}

// Remove returns a filter that strips every occurrence of the given
// characters.
func Remove(chars string) rules.Filter {
	return func(v any) any {
		return mapString(v, func(s string) string {
			return strings.Map(func(r rune) rune {
				if strings.ContainsRune(chars, r) {
					return -1
				}
				return r
			}, s)
		})
	}
}

// Replace returns a filter that replaces every occurrence of old with new.
func Replace(old, new string) rules.Filter {
	return func(v any) any {
		return mapString(v, func(s string) string {
			return strings.ReplaceAll(s, old, new)
		})
	}
}

// keepOnly builds a strings.Map mapper dropping every rune that satisfies
// none of the predicates.
func keepOnly(preds ...func(rune) bool) func(rune) rune {
	return func(r rune) rune {
		for _, pred := range preds {
			if pred(r) {
				return r
			}
		}
		return -1
	}
}

// delimited lowercases the value and joins alphanumeric runs with sep,
// collapsing everything else ("Hello,  World" -> "hello_world").
func delimited(s string, sep rune) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	pending := false
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteRune(sep)
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func camelCase(s string) string {
	var b strings.Builder
	newWord := false
	for _, r := range strings.TrimSpace(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if b.Len() > 0 {
				newWord = true
			}
			continue
		}
		switch {
		case b.Len() == 0:
			b.WriteRune(unicode.ToLower(r))
		case newWord:
			b.WriteRune(unicode.ToUpper(r))
			newWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
