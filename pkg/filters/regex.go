package filters

import "regexp"

// Pre-compiled regular expressions shared by the string filters.
var (
	whitespaceRunRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex       = regexp.MustCompile(`<[^>]*>`)
)
