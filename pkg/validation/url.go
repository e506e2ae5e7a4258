package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// URLPattern accepts http(s) URLs whose host carries at least one dot-separated
// label, followed by an optional run of path/query/fragment characters. The
// match is anchored and case-insensitive; \w is ASCII-only.
const URLPattern = `(?i)^(https?://)[\w.-]+(?:\.[\w.-]+)+[\w\-._~:/?#\[\]@!$&'()*+,;=.]+$`

// ErrInvalidURL reports text that does not match URLPattern.
var ErrInvalidURL = errors.New("validation: not a valid URL (must start with http:// or https://)")

var urlPattern = regexp.MustCompile(URLPattern)

// URLResult captures the outcome of checking submitted text.
type URLResult struct {
	Text  string `json:"text"`
	Valid bool   `json:"valid"`
}

// Err returns nil for valid results and ErrInvalidURL, wrapped with the
// offending text, otherwise.
func (r URLResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidURL, r.Text)
}

// ValidURL reports whether text is a displayable URL.
func ValidURL(text string) bool {
	return urlPattern.MatchString(text)
}

// CheckURL validates text and returns the result.
func CheckURL(text string) URLResult {
	return URLResult{Text: text, Valid: ValidURL(text)}
}
