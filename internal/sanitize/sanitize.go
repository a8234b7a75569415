// Package sanitize strips markup from user-supplied text before it is
// persisted. Thread bodies and comments are plain text; anything that looks
// like HTML is hostile.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer struct {
	policy *bluemonday.Policy
}

func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes all HTML elements and trims surrounding whitespace.
// bluemonday entity-escapes remaining text, so the escaping is undone to
// keep stored content plain.
func (s *Sanitizer) Clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
