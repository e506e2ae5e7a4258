package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-qrgen/pkg/render/template"
)

var errNilEngine = errors.New("gotemplate: engine is nil")

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	hasSource bool
	options   []gotemplatepkg.Option
	preHooks  []gotemplatepkg.PreHook
	postHooks []gotemplatepkg.PostHook
}

// WithBaseDir loads templates from a directory on disk, searched before any
// WithFS source.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return
		}
		cfg.hasSource = true
		cfg.options = append(cfg.options, gotemplatepkg.WithBaseDir(dir))
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files == nil {
			return
		}
		cfg.hasSource = true
		cfg.options = append(cfg.options, gotemplatepkg.WithFS(files))
	}
}

// WithExtension overrides the ".tpl" suffix appended to template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		cfg.options = append(cfg.options, gotemplatepkg.WithExtension(ext))
	}
}

// WithFilter registers a pongo2 filter when the engine loads. Filters are
// process wide and the first registration of a name wins.
func WithFilter(name string, fn pongo2.FilterFunction) Option {
	return func(cfg *config) {
		name = strings.TrimSpace(name)
		if name == "" || fn == nil {
			return
		}
		cfg.options = append(cfg.options, gotemplatepkg.WithTemplateFunc(map[string]any{name: fn}))
	}
}

// WithGlobalData seeds values every template sees.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		cfg.options = append(cfg.options, gotemplatepkg.WithGlobalData(data))
	}
}

// WithPreHook runs hook before each render. Hooks may replace the data or
// the template name.
func WithPreHook(hook gotemplatepkg.PreHook) Option {
	return func(cfg *config) {
		if hook != nil {
			cfg.preHooks = append(cfg.preHooks, hook)
		}
	}
}

// WithPostHook runs hook on each rendered output.
func WithPostHook(hook gotemplatepkg.PostHook) Option {
	return func(cfg *config) {
		if hook != nil {
			cfg.postHooks = append(cfg.postHooks, hook)
		}
	}
}

// WithGoTemplateOptions forwards raw go-template options, applied after the
// options above.
func WithGoTemplateOptions(options ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		for _, opt := range options {
			if opt != nil {
				cfg.options = append(cfg.options, opt)
			}
		}
	}
}

// Engine adapts a go-template renderer to template.TemplateRenderer.
type Engine struct {
	renderer *gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Either WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	var cfg config
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.hasSource {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	renderer, err := gotemplatepkg.NewRenderer(cfg.options...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load templates: %w", err)
	}
	for _, hook := range cfg.preHooks {
		renderer.RegisterPreHook(hook)
	}
	for _, hook := range cfg.postHooks {
		renderer.RegisterPostHook(hook)
	}

	return &Engine{renderer: renderer}, nil
}

// Render treats name as inline source when it contains template delimiters
// and as a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errNilEngine
	}
	result, err := e.renderer.Render(name, data, writers(out)...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: render: %w", err)
	}
	return result, nil
}

// RenderTemplate executes the template at name. Parsed templates are cached.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errNilEngine
	}
	result, err := e.renderer.RenderTemplate(name, data, writers(out)...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: render template %q: %w", name, err)
	}
	return result, nil
}

// RenderString parses and executes source without caching it.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errNilEngine
	}
	result, err := e.renderer.RenderString(source, data, writers(out)...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: render string: %w", err)
	}
	return result, nil
}

// RegisterFilter registers a filter by name. A name can only be registered
// once per process.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if e == nil || e.renderer == nil {
		return errNilEngine
	}
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if err := e.renderer.RegisterFilter(name, fn); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.renderer == nil {
		return errNilEngine
	}
	if ctx, ok := data.(pongo2.Context); ok {
		data = map[string]any(ctx)
	}
	if err := e.renderer.GlobalContext(data); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

func writers(out []io.Writer) []io.Writer {
	filtered := out[:0:0]
	for _, w := range out {
		if w != nil {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
