package handler

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/goliatone/go-qrgen/pkg/page"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/renderers/vanilla"
	"github.com/goliatone/go-qrgen/pkg/validation"
)

// ContentType is the media type of every response.
const ContentType = "text/html"

// ErrUnsupportedRenderer is returned when a renderer does not produce HTML.
var ErrUnsupportedRenderer = errors.New("handler: renderer must produce text/html")

// Handler renders the generator page for every request.
type Handler struct {
	opts       Options
	renderer   render.Renderer
	renderOpts render.RenderOptions
	// fallback is the empty form rendered at construction, served when a
	// request-time render fails.
	fallback []byte
}

var _ http.Handler = (*Handler)(nil)

// NewHandler builds a handler with default options plus any overrides.
func NewHandler(fns ...OptionFn) (*Handler, error) {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds a handler from a pre-constructed Options value. It
// fails when the renderer cannot produce the empty form.
func HandlerWithOptions(opts Options) (*Handler, error) {
	opts = NewOptions(func(o *Options) { *o = opts })

	renderer := opts.Renderer
	if renderer == nil {
		html, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("handler: default renderer: %w", err)
		}
		renderer = html
	}
	if mediaType, _, err := mime.ParseMediaType(renderer.ContentType()); err != nil || mediaType != ContentType {
		return nil, fmt.Errorf("%w: %s renders %q", ErrUnsupportedRenderer, renderer.Name(), renderer.ContentType())
	}

	h := &Handler{
		opts:     opts,
		renderer: renderer,
		renderOpts: render.RenderOptions{
			Field:    opts.Field,
			BackPath: opts.BackPath,
		},
	}

	fallback, err := renderer.Render(context.Background(), page.Empty(), h.renderOpts)
	if err != nil {
		return nil, fmt.Errorf("handler: render empty form: %w", err)
	}
	h.fallback = fallback
	return h, nil
}

// Options returns a copy of the handler configuration.
func (h *Handler) Options() Options {
	return h.opts
}

// ServeHTTP always answers 200 with the rendered page.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state := h.State(r)

	body, err := h.renderer.Render(r.Context(), state, h.renderOpts)
	if err != nil {
		h.opts.Logger.ErrorContext(r.Context(), "render failed, serving empty form",
			"renderer", h.renderer.Name(),
			"error", err,
		)
		body = h.fallback
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// State resolves the page state for r. Only POST bodies are read; query
// parameters never count as a submission.
func (h *Handler) State(r *http.Request) page.State {
	if r == nil || r.Method != http.MethodPost {
		return page.Empty()
	}

	text := h.submittedText(r)
	result := validation.CheckURL(text)
	return page.Submitted(result.Text, result.Valid)
}

func (h *Handler) submittedText(r *http.Request) string {
	err := r.ParseMultipartForm(h.opts.MaxFormMemory)
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return ""
	}
	return r.PostForm.Get(h.opts.Field)
}
