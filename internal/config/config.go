// Package config loads qrgen settings from defaults, an optional YAML file,
// QRGEN_* environment variables and command line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-qrgen/internal/logging"
	"github.com/goliatone/go-qrgen/pkg/page"
	"github.com/goliatone/go-qrgen/pkg/theme"
)

const (
	EnvPrefix = "QRGEN"
	FileName  = "qrgen"
)

type Config struct {
	Addr              string        `mapstructure:"addr"`
	BasePath          string        `mapstructure:"base_path"`
	ShutdownGrace     time.Duration `mapstructure:"shutdown_grace"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	Field             string        `mapstructure:"field"`
	MaxFormMemory     int64         `mapstructure:"max_form_memory"`
	Notice            string        `mapstructure:"notice"`
	ScriptURL         string        `mapstructure:"script_url"`
	Log               LogConfig     `mapstructure:"log"`
	Theme             ThemeConfig   `mapstructure:"theme"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ThemeConfig struct {
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant"`
	// Manifest is an optional YAML manifest file registered next to the
	// built-in theme.
	Manifest string `mapstructure:"manifest"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Addr:              ":8787",
		BasePath:          "/",
		ShutdownGrace:     5 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		Field:             page.DefaultField,
		MaxFormMemory:     32 << 20,
		ScriptURL:         page.DefaultScriptURL,
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
		Theme: ThemeConfig{
			Name: theme.DefaultName,
		},
	}
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"addr":           "addr",
	"base-path":      "base_path",
	"field":          "field",
	"notice":         "notice",
	"script-url":     "script_url",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"theme":          "theme.name",
	"variant":        "theme.variant",
	"theme-manifest": "theme.manifest",
}

// Load resolves the configuration. An empty file searches for qrgen.yaml in
// the working directory and $HOME/.config/qrgen, and a missing file there is
// not an error. Flags may be nil; only flags listed in flagKeys are bound.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
			}
		}
	}

	if file = strings.TrimSpace(file); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/qrgen")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("addr", cfg.Addr)
	v.SetDefault("base_path", cfg.BasePath)
	v.SetDefault("shutdown_grace", cfg.ShutdownGrace)
	v.SetDefault("read_header_timeout", cfg.ReadHeaderTimeout)
	v.SetDefault("field", cfg.Field)
	v.SetDefault("max_form_memory", cfg.MaxFormMemory)
	v.SetDefault("notice", cfg.Notice)
	v.SetDefault("script_url", cfg.ScriptURL)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("theme.name", cfg.Theme.Name)
	v.SetDefault("theme.variant", cfg.Theme.Variant)
	v.SetDefault("theme.manifest", cfg.Theme.Manifest)
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return &Error{Field: "addr", Message: "listen address is required"}
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return &Error{Field: "base_path", Message: fmt.Sprintf("must start with '/', got %q", c.BasePath)}
	}
	if c.ShutdownGrace < 0 {
		return &Error{Field: "shutdown_grace", Message: "must not be negative"}
	}
	if c.ReadHeaderTimeout < 0 {
		return &Error{Field: "read_header_timeout", Message: "must not be negative"}
	}
	if strings.TrimSpace(c.Field) == "" {
		return &Error{Field: "field", Message: "form field name is required"}
	}
	if c.MaxFormMemory <= 0 {
		return &Error{Field: "max_form_memory", Message: "must be positive"}
	}
	if strings.TrimSpace(c.ScriptURL) == "" {
		return &Error{Field: "script_url", Message: "QR script URL is required"}
	}
	if !logging.ValidLevel(c.Log.Level) {
		return &Error{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return &Error{Field: "log.format", Message: fmt.Sprintf("unknown format %q", c.Log.Format)}
	}
	return nil
}

// Error represents a configuration error.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
