package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-qrgen/internal/config"
	"github.com/goliatone/go-qrgen/internal/logging"
	"github.com/goliatone/go-qrgen/pkg/orchestrator"
	"github.com/goliatone/go-qrgen/pkg/renderers/tui"
	"github.com/goliatone/go-qrgen/pkg/theme"
)

const version = "1.0.0"

var configFile string

var rootCmd = &cobra.Command{
	Use:   "qrgen",
	Short: "QR code generator page",
	Long: `qrgen serves a single HTML page: submit a URL and the browser draws its QR code.

Settings come from qrgen.yaml (working directory or ~/.config/qrgen),
QRGEN_* environment variables and flags, in increasing precedence.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("qrgen version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default: search for qrgen.yaml)")
	flags.String("log-level", "", "Log level: debug, info, warn, error, off")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("theme", "", "Theme name")
	flags.String("variant", "", "Theme variant (e.g. dark)")
	flags.String("theme-manifest", "", "YAML theme manifest to register")
	flags.String("notice", "", "HTML notice shown under the heading")
	flags.String("script-url", "", "URL of qrcode.min.js")
	flags.String("field", "", "Form field carrying the URL")
}

// loadConfig resolves and validates settings for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	return logging.New(w, cfg.Log.Format, logging.LevelFromString(cfg.Log.Level))
}

// newOrchestrator builds the themed renderer pipeline described by cfg.
func newOrchestrator(cfg *config.Config, tuiOpts ...tui.Option) (*orchestrator.Orchestrator, error) {
	catalog, err := theme.NewCatalog()
	if err != nil {
		return nil, err
	}
	if cfg.Theme.Manifest != "" {
		manifest, err := theme.LoadManifestFile(cfg.Theme.Manifest)
		if err != nil {
			return nil, err
		}
		if err := catalog.Register(manifest); err != nil {
			return nil, err
		}
	}

	gen := orchestrator.New(
		orchestrator.WithThemeSelector(catalog, cfg.Theme.Name, cfg.Theme.Variant),
		orchestrator.WithNotice(cfg.Notice),
		orchestrator.WithScriptURL(cfg.ScriptURL),
		orchestrator.WithTUIOptions(tuiOpts...),
	)
	if err := gen.Err(); err != nil {
		return nil, fmt.Errorf("build renderers: %w", err)
	}
	return gen, nil
}
