// Package sanitize strips HTML markup from free-text user input before
// it reaches the persistence layer.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy removes every tag and attribute. Plain text survives untouched.
var policy = bluemonday.StrictPolicy()

// Strict returns s with all HTML markup removed and surrounding
// whitespace trimmed.
func Strict(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
