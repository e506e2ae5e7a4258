package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/page"
	"github.com/goliatone/go-qrgen/pkg/render"
	rendertemplate "github.com/goliatone/go-qrgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-qrgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-qrgen/pkg/theme"
)

const (
	Name        = "vanilla"
	ContentType = "text/html"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	palette          *theme.Palette
	notice           string
	qr               page.QRCode
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPalette sets the page colors and the QR code colors.
func WithPalette(palette theme.Palette) Option {
	return func(cfg *config) {
		cfg.palette = &palette
	}
}

// WithNotice shows raw (sanitized on construction) HTML under the heading.
func WithNotice(raw string) Option {
	return func(cfg *config) {
		cfg.notice = raw
	}
}

// WithScriptURL overrides where the browser loads qrcode.js from.
func WithScriptURL(url string) Option {
	return func(cfg *config) {
		cfg.qr.ScriptURL = strings.TrimSpace(url)
	}
}

// WithQRSize sets the viewport ratio and the pixel cap of the QR code.
func WithQRSize(ratio float64, maxSize int) Option {
	return func(cfg *config) {
		cfg.qr.SizeRatio = ratio
		cfg.qr.MaxSize = maxSize
	}
}

// Renderer renders the full HTML page through the template engine.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	style     string
	notice    string
	qr        page.QRCode
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	palette := theme.DefaultPalette()
	if cfg.palette != nil {
		palette = *cfg.palette
	}
	qr := cfg.qr
	qr.ColorDark = palette.QRDark()
	qr.ColorLight = palette.QRLight()

	return &Renderer{
		templates: renderer,
		style:     palette.Style(),
		notice:    SanitizeNotice(cfg.notice),
		qr:        qr,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return ContentType
}

func (r *Renderer) Render(ctx context.Context, state page.State, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	view, err := page.NewView(state, page.ViewOptions{
		Field:    opts.Field,
		BackPath: opts.BackPath,
		Notice:   r.notice,
		Style:    r.style,
		QR:       r.qr,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: build view: %w", err)
	}

	result, err := r.templates.RenderTemplate(PageTemplate, map[string]any{
		"page": view,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
