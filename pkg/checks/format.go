package checks

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formguard/pkg/rules"
)

// Matches fails for values that do not satisfy the regular expression. The
// what argument names the expected format in the failure message. A nil
// expression is a rule-construction misuse and panics immediately.
func Matches(re *regexp.Regexp, what string) rules.Check {
	if re == nil {
		panic("checks: Matches requires a compiled regular expression")
	}
	return func(v any, _ map[string]any, _ string) string {
		if re.MatchString(stringValue(v)) {
			return ""
		}
		return fmt.Sprintf("Not a valid %s", what)
	}
}

// Email fails for values that are not plain RFC 5322 addresses with a dotted
// domain, the shape web forms expect.
func Email() rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		if validEmail(stringValue(v)) {
			return ""
		}
		return "Invalid email address"
	}
}

func validEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		// Display names and comments are not acceptable form input.
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL fails for values that do not parse as absolute http or https URLs
// with a host.
func URL() rules.Check {
	return func(v any, _ map[string]any, _ string) string {
		u, err := url.Parse(stringValue(v))
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return "Invalid URL"
		}
		return ""
	}
}
