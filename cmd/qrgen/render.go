package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-qrgen/pkg/orchestrator"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/renderers/tui"
)

var (
	renderRenderer string
	renderOutput   string
	renderFormat   string
	renderBackPath string
)

var renderCmd = &cobra.Command{
	Use:   "render [text]",
	Short: "Render the page for a submitted text",
	Long: `Render the page the server would answer with, without starting it.

With no argument the empty form is rendered (as for a GET request).

Examples:
  qrgen render https://example.com > page.html
  qrgen render not-a-url --renderer tui --format pretty
  qrgen render https://example.com -o page.html --variant dark`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderRenderer, "renderer", "vanilla", "Renderer to use: vanilla or tui")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (stdout if empty)")
	renderCmd.Flags().StringVar(&renderFormat, "format", string(tui.OutputFormatJSON), "tui output format: json, form or pretty")
	renderCmd.Flags().StringVar(&renderBackPath, "back-path", "/", "Target of the back link")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newOrchestrator(cfg, tui.WithOutputFormat(tui.OutputFormat(renderFormat)))
	if err != nil {
		return err
	}

	req := orchestrator.Request{
		Renderer: renderRenderer,
		RenderOptions: render.RenderOptions{
			Field:    cfg.Field,
			BackPath: renderBackPath,
		},
	}
	if len(args) == 1 {
		req.Text = args[0]
		req.Submitted = true
	}

	out, err := gen.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	if renderOutput != "" {
		if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Page written to %s\n", renderOutput)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
