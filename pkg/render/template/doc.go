// Package template defines the template rendering seam used by page
// renderers. The gotemplate subpackage adapts the
// github.com/goliatone/go-template engine to it.
package template
