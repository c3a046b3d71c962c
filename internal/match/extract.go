package match

import (
	"path/filepath"
	"regexp"
	"strings"
)

// extractRule pairs a compiled regex with a name for logging. Rules are
// evaluated in order by [Extract]; first capture wins.
type extractRule struct {
	name    string
	pattern *regexp.Regexp
}

// Code-like columns carry a numeric or alphanumeric token somewhere in the
// stem, separated by underscore, space, or dash.
var codeRules = []extractRule{
	{"leading-digits", regexp.MustCompile(`^([0-9]+)(?:[\s_\-]|$)`)},
	{"trailing-digits", regexp.MustCompile(`[\s_\-]([0-9]+)$`)},
	{"leading-alnum", regexp.MustCompile(`^([0-9A-Za-z]+)(?:[\s_\-]|$)`)},
}

// Stem returns the filename without its final extension. A name without a
// dot is returned whole; a dotfile-style name keeps itself as the stem so
// the result is never empty.
func Stem(filename string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	if stem == "" {
		return filename
	}
	return stem
}

// Extract derives the candidate key used to look the file up in the
// reference index. Name-like columns use the whole stem (the fuzzy
// strategies absorb the variation); code-like columns isolate a token via
// the rule table, falling back to the stem when no rule applies. The result
// is never empty for a non-empty filename.
func Extract(filename string, nameLike bool) string {
	stem := Stem(filename)
	if nameLike {
		return stem
	}
	for _, rule := range codeRules {
		if m := rule.pattern.FindStringSubmatch(stem); m != nil {
			return m[1]
		}
	}
	return stem
}
