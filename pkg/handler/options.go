package handler

import (
	"log/slog"

	"github.com/goliatone/go-qrgen/pkg/page"
	"github.com/goliatone/go-qrgen/pkg/render"
)

const (
	DefaultRoutePath     = "/"
	DefaultMaxFormMemory = 32 << 20
)

type Options struct {
	RoutePath     string
	Field         string
	MaxFormMemory int64
	// BackPath is where the "generate another" link points. RegisterRoutes
	// defaults it to the mount path.
	BackPath string
	Renderer render.Renderer
	Logger   *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:     DefaultRoutePath,
		Field:         page.DefaultField,
		MaxFormMemory: DefaultMaxFormMemory,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.Field == "" {
		opts.Field = page.DefaultField
	}
	if opts.MaxFormMemory <= 0 {
		opts.MaxFormMemory = DefaultMaxFormMemory
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithField(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Field = name
	}
}

func WithMaxFormMemory(size int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxFormMemory = size
	}
}

func WithBackPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BackPath = path
	}
}

// WithRenderer replaces the default vanilla HTML renderer.
func WithRenderer(renderer render.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

// WithLogger sets the logger used to report render failures.
func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
