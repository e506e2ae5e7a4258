// Package apidoc describes the generator's HTTP surface as an OpenAPI 3
// document.
package apidoc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-qrgen/pkg/page"
	"github.com/goliatone/go-qrgen/pkg/validation"
)

const (
	Title   = "QR Code Generator"
	Version = "1.0.0"
)

type options struct {
	field     string
	serverURL string
}

// Option customises the generated document.
type Option func(*options)

// WithField names the form field carrying the URL. Defaults to "text".
func WithField(name string) Option {
	return func(o *options) {
		if name = strings.TrimSpace(name); name != "" {
			o.field = name
		}
	}
}

// WithServerURL adds a servers entry.
func WithServerURL(url string) Option {
	return func(o *options) {
		o.serverURL = strings.TrimSpace(url)
	}
}

// Document builds and validates the description of GET and POST on path.
func Document(ctx context.Context, path string, opts ...Option) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := options{field: page.DefaultField}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	raw, err := json.Marshal(rawDocument(path, cfg))
	if err != nil {
		return nil, fmt.Errorf("apidoc: encode document: %w", err)
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("apidoc: load document: %w", err)
	}
	if err := doc.Validate(ctx,
		openapi3.DisableExamplesValidation(),
		openapi3.DisableSchemaPatternValidation(),
	); err != nil {
		return nil, fmt.Errorf("apidoc: validate: %w", err)
	}
	return doc, nil
}

// JSON returns the indented document.
func JSON(ctx context.Context, path string, opts ...Option) ([]byte, error) {
	doc, err := Document(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("apidoc: marshal: %w", err)
	}
	return append(out, '\n'), nil
}

func rawDocument(path string, cfg options) map[string]any {
	page200 := map[string]any{
		"200": map[string]any{
			"description": "The generator page. Every request is answered with 200.",
			"content": map[string]any{
				"text/html": map[string]any{
					"schema": map[string]any{"type": "string"},
				},
			},
		},
	}

	formSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			cfg.field: map[string]any{
				"type":        "string",
				"pattern":     validation.URLPattern,
				"description": "URL to encode. A value that does not match the pattern shows an inline warning.",
				"example":     "https://example.com",
			},
		},
	}

	doc := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       Title,
			"version":     Version,
			"description": "Serves an HTML form that renders a QR code for a submitted URL in the browser.",
		},
		"paths": map[string]any{
			path: map[string]any{
				"get": map[string]any{
					"operationId": "showForm",
					"summary":     "Empty form",
					"responses":   page200,
				},
				"post": map[string]any{
					"operationId": "generate",
					"summary":     "Validate a URL and render its QR code",
					"requestBody": map[string]any{
						"required": false,
						"content": map[string]any{
							"application/x-www-form-urlencoded": map[string]any{"schema": formSchema},
							"multipart/form-data":               map[string]any{"schema": formSchema},
						},
					},
					"responses": page200,
				},
			},
		},
	}
	if cfg.serverURL != "" {
		doc["servers"] = []any{map[string]any{"url": cfg.serverURL}}
	}
	return doc
}
