package render

// RenderOptions carries per-request data that depends on where the page is
// mounted rather than on what was submitted.
type RenderOptions struct {
	// Field is the form field name the input is rendered with. Empty means
	// page.DefaultField.
	Field string
	// BackPath is the target of the "generate another" link. Empty means "/".
	BackPath string
}
