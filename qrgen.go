// Package qrgen serves a single page that turns a submitted URL into a QR
// code rendered in the browser.
//
// The quickest start mounts the default handler:
//
//	mux := http.NewServeMux()
//	if _, err := handler.RegisterRoutes(mux, "/"); err != nil {
//		log.Fatal(err)
//	}
//
// NewHandler and GenerateHTML expose the same pipeline with theming and the
// renderer registry wired through the orchestrator.
package qrgen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-qrgen/pkg/handler"
	"github.com/goliatone/go-qrgen/pkg/orchestrator"
	"github.com/goliatone/go-qrgen/pkg/page"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/renderers/vanilla"
	"github.com/goliatone/go-qrgen/pkg/validation"
)

// RenderOptions aliases render.RenderOptions for callers of the top-level
// package.
type RenderOptions = render.RenderOptions

// State aliases page.State.
type State = page.State

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// ValidURL reports whether text is accepted as a URL.
func ValidURL(text string) bool {
	return validation.ValidURL(text)
}

// GenerateHTML renders the page for a submitted text with the vanilla
// renderer.
func GenerateHTML(ctx context.Context, text string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Text:      text,
		Submitted: true,
		Renderer:  vanilla.Name,
	})
}

// NewHandler builds the page handler with the orchestrator's default
// renderer. Handler options are applied after it, so WithRenderer still wins.
func NewHandler(gen *orchestrator.Orchestrator, fns ...handler.OptionFn) (*handler.Handler, error) {
	if gen == nil {
		gen = orchestrator.New()
	}
	renderer, err := gen.Renderer("")
	if err != nil {
		return nil, err
	}
	return handler.NewHandler(append([]handler.OptionFn{handler.WithRenderer(renderer)}, fns...)...)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
