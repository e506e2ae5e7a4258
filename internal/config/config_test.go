package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
addr: ":9000"
base_path: /qr
shutdown_grace: 2s
notice: "<b>hi</b>"
log:
  level: debug
theme:
  variant: dark
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("QRGEN_LOG_FORMAT", "json")
	t.Setenv("QRGEN_BASE_PATH", "/env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", ":1", "")
	flags.String("theme", "", "")
	if err := flags.Parse([]string{"--theme", "midnight"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Default()
	want.Addr = ":9000"
	want.BasePath = "/env"
	want.ShutdownGrace = 2 * time.Second
	want.Notice = "<b>hi</b>"
	want.Log.Level = "debug"
	want.Log.Format = "json"
	want.Theme.Name = "midnight"
	want.Theme.Variant = "dark"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	isolate(t)

	if err := os.WriteFile("qrgen.yaml", []byte("addr: \":7000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Fatalf("expected addr from qrgen.yaml, got %q", cfg.Addr)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty addr", func(c *Config) { c.Addr = " " }, "addr"},
		{"relative base path", func(c *Config) { c.BasePath = "qr" }, "base_path"},
		{"negative grace", func(c *Config) { c.ShutdownGrace = -time.Second }, "shutdown_grace"},
		{"empty field", func(c *Config) { c.Field = "" }, "field"},
		{"zero form memory", func(c *Config) { c.MaxFormMemory = 0 }, "max_form_memory"},
		{"empty script url", func(c *Config) { c.ScriptURL = "" }, "script_url"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error type = %T, want *Error", err)
			}
			if cfgErr.Field != tt.field {
				t.Fatalf("Validate() field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Field: "addr", Message: "listen address is required"}
	want := "config error in field 'addr': listen address is required"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
