package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Derive builds a URL-safe slug from a human-readable name.
// Lowercase, every run of non-alphanumeric characters becomes a single
// hyphen, leading and trailing hyphens are trimmed.
// An empty result means the name has no usable characters.
func Derive(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
