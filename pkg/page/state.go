package page

import "strings"

const (
	Title           = "QR Code Generator"
	LabelGenerate   = "Generate QR Code"
	LabelRegenerate = "Regenerate"
	ErrorMessage    = "⚠️ Please enter a valid URL (starting with http:// or https://)"
	Placeholder     = "Enter a valid URL"
	BackLinkText    = "← Generate another"
)

// State is the request-scoped outcome of handling one request.
type State struct {
	Text  string `json:"text"`
	Valid bool   `json:"valid"`
}

// Empty returns the state used for GET requests: no text, no error.
func Empty() State {
	return State{Valid: true}
}

// Submitted returns the state for a POSTed text and its validation result.
func Submitted(text string, valid bool) State {
	return State{Text: text, Valid: valid}
}

func (s State) ShowQR() bool {
	return s.Valid && s.Text != ""
}

func (s State) ShowError() bool {
	return !s.Valid && s.Text != ""
}

func (s State) ButtonLabel() string {
	if s.ShowQR() {
		return LabelRegenerate
	}
	return LabelGenerate
}

// InputValue is the text as it appears in the input's value attribute.
func (s State) InputValue() string {
	return EscapeQuotes(s.Text)
}

// EscapeQuotes replaces every double quote with &quot;. No other character is
// touched.
func EscapeQuotes(text string) string {
	return strings.ReplaceAll(text, `"`, "&quot;")
}
