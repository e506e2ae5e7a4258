// Package theme resolves the page palette (CSS custom properties and the QR
// code colors) from go-theme manifests.
//
// The built-in "qrgen" manifest reproduces the stock look; operators can load
// additional manifests from YAML and pick a theme/variant pair at startup.
package theme
