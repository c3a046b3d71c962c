package naming

import "strings"

// illegalChars maps the characters rejected by common filesystems to
// underscores.
var illegalChars = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	`"`, "_",
	"/", "_",
	`\`, "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// Sanitize replaces filesystem-illegal characters in a rendered filename
// with underscores. Cell values like "A/B" would otherwise escape into
// path separators.
func Sanitize(name string) string {
	return illegalChars.Replace(name)
}
