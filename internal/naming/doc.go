// Package naming renders new filenames from placeholder templates and keeps
// output names unique within a commit pass.
//
// Render expands {field} tokens from the matched reference row, handles the
// special {extensao} token, and sanitizes filesystem-illegal characters.
// CollisionResolver disambiguates duplicate output names with " - dupN"
// suffixes. Split along these boundaries: template.go, sanitize.go,
// collision.go.
package naming
