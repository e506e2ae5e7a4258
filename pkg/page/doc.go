// Package page models the single QR generator page: the request-scoped state
// derived from a submission and the view data handed to renderers.
//
// A State is either empty (GET, or POST without text), valid (the QR code
// script is emitted) or invalid (an inline warning is shown and the submitted
// text is echoed back into the input with only double quotes escaped).
package page
