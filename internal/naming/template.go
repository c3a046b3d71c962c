package naming

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"renomeia/internal/refdata"
)

// ErrNoMatch flags a file whose reference row could not be resolved. The
// original filename is kept as the safe fallback name.
var ErrNoMatch = errors.New("reference data not found")

// ExtensionToken is the placeholder that receives the original extension
// without its leading dot. When the template omits it, the extension is
// appended verbatim instead.
const ExtensionToken = "extensao"

var reToken = regexp.MustCompile(`\{([^{}]*)\}`)

// Render expands the template for one file against its matched row and
// returns the sanitized new filename. Placeholders resolve to the row's
// field values; a field absent from the row degrades to an empty segment
// (not an error). Render is pure: the same (originalName, row, template)
// triple always yields the same result.
//
// A nil row returns the original name together with [ErrNoMatch].
func Render(originalName string, row refdata.Row, template string) (string, error) {
	if row == nil {
		return originalName, ErrNoMatch
	}

	ext := filepath.Ext(originalName) // includes the dot, "" when absent

	hasExtToken := false
	name := reToken.ReplaceAllStringFunc(template, func(tok string) string {
		field := tok[1 : len(tok)-1]
		if field == ExtensionToken {
			hasExtToken = true
			return strings.TrimPrefix(ext, ".")
		}
		return row.Get(field)
	})
	if !hasExtToken {
		name += ext
	}
	return Sanitize(name), nil
}
