package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-qrgen/internal/server"
	"github.com/goliatone/go-qrgen/pkg/handler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generator page over HTTP",
	Long: `Serve the generator page until interrupted.

Examples:
  qrgen serve                       # listen on :8787
  qrgen serve --addr :8080 --base-path /qr
  QRGEN_THEME_VARIANT=dark qrgen serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8787)")
	serveCmd.Flags().String("base-path", "", "Path the page is mounted under (default /)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	gen, err := newOrchestrator(cfg)
	if err != nil {
		return err
	}
	renderer, err := gen.Renderer("")
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Addr:              cfg.Addr,
		BasePath:          cfg.BasePath,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownGrace:     cfg.ShutdownGrace,
		Logger:            logger,
		Page: []handler.OptionFn{
			handler.WithRenderer(renderer),
			handler.WithField(cfg.Field),
			handler.WithMaxFormMemory(cfg.MaxFormMemory),
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting qrgen",
		"addr", cfg.Addr,
		"path", srv.Pattern(),
		"theme", gen.Palette().Theme,
		"variant", gen.Palette().Variant,
	)
	return srv.Run(ctx)
}
