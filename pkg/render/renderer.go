package render

import (
	"context"

	"github.com/goliatone/go-qrgen/pkg/page"
)

// Renderer turns a page state into a response body.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, state page.State, options RenderOptions) ([]byte, error)
}
