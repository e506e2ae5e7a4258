package orchestrator

import (
	"context"
	"errors"
	"fmt"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-qrgen/pkg/page"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/renderers/tui"
	"github.com/goliatone/go-qrgen/pkg/renderers/vanilla"
	"github.com/goliatone/go-qrgen/pkg/theme"
	"github.com/goliatone/go-qrgen/pkg/validation"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. The theme, notice and script
// options only apply to the default registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves the page palette through selector.
func WithThemeSelector(selector gotheme.ThemeSelector, name, variant string) Option {
	return func(o *Orchestrator) {
		o.selector = selector
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithNotice shows an operator notice on HTML pages.
func WithNotice(raw string) Option {
	return func(o *Orchestrator) {
		o.notice = raw
	}
}

// WithScriptURL overrides where browsers load qrcode.js from.
func WithScriptURL(url string) Option {
	return func(o *Orchestrator) {
		o.scriptURL = url
	}
}

// WithTUIOptions configures the terminal renderer of the default registry.
func WithTUIOptions(opts ...tui.Option) Option {
	return func(o *Orchestrator) {
		o.tuiOptions = append(o.tuiOptions, opts...)
	}
}

// Orchestrator turns submitted text into rendered output. It applies sensible
// defaults (built-in theme, vanilla and tui renderers) while remaining open to
// dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	selector        gotheme.ThemeSelector
	themeName       string
	themeVariant    string
	notice          string
	scriptURL       string
	tuiOptions      []tui.Option
	palette         theme.Palette
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Construction
// errors (unknown theme, broken templates) surface from Generate and Err.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one page to render.
type Request struct {
	// Text is the submitted value. Ignored unless Submitted is set.
	Text string

	// Submitted marks a form submission. Without it the empty form is
	// rendered, as for a GET.
	Submitted bool

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	RenderOptions render.RenderOptions
}

// Err reports a construction failure.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

// Palette returns the resolved page palette.
func (o *Orchestrator) Palette() theme.Palette {
	return o.palette
}

// Registry returns the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// State validates req into the page state.
func (o *Orchestrator) State(req Request) page.State {
	if !req.Submitted {
		return page.Empty()
	}
	result := validation.CheckURL(req.Text)
	return page.Submitted(result.Text, result.Valid)
}

// Generate validates the request and renders it with the selected renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, o.State(req), req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer looks up name, or the default renderer when name is empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	renderer, err := o.registry.Resolve(name, o.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.palette = theme.DefaultPalette()
	if o.selector != nil {
		palette, err := theme.Resolve(o.selector, o.themeName, o.themeVariant)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: resolve theme: %w", err)
			return
		}
		o.palette = palette
	}

	if o.registry != nil {
		return
	}

	html, err := vanilla.New(
		vanilla.WithPalette(o.palette),
		vanilla.WithNotice(o.notice),
		vanilla.WithScriptURL(o.scriptURL),
	)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		return
	}
	terminal, err := tui.New(o.tuiOptions...)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: tui renderer: %w", err)
		return
	}
	o.registry = render.NewRegistry(html, terminal)
}
