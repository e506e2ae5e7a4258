// Package handler serves the QR code generator page over net/http.
//
// Every request is answered with status 200 and the rendered page. POST
// requests carry the candidate URL in the form body (url-encoded or
// multipart, field "text" by default); any other method gets the empty form.
// A valid URL yields the page with the client-side QR code invocation, an
// invalid one yields the inline warning and the submitted value in the input.
package handler
