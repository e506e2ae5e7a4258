package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-qrgen/pkg/renderers/tui"
	"github.com/goliatone/go-qrgen/pkg/validation"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check [url...]",
	Short: "Check URLs against the generator's URL rule",
	Long: `Check URLs the way the page validates submissions.

With arguments, prints one line per URL and fails when any is invalid.
Without arguments, prompts interactively until you stop.

Examples:
  qrgen check https://example.com ftp://example.com
  qrgen check            # interactive`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Interactive mode: reject invalid URLs at the prompt")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return checkURLs(cmd.OutOrStdout(), args)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newOrchestrator(cfg,
		tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
		tui.WithOutputFormat(tui.OutputFormatPrettyText),
		tui.WithTheme(tui.Theme{InfoPrefix: "✔ ", ErrorPrefix: "✘ "}),
		tui.WithStrictPrompt(checkStrict),
	)
	if err != nil {
		return err
	}
	renderer, err := gen.Renderer(tui.Name)
	if err != nil {
		return err
	}
	session, ok := renderer.(*tui.Renderer)
	if !ok {
		return fmt.Errorf("renderer %q does not support prompts", tui.Name)
	}

	if _, err := session.Session(cmd.Context()); err != nil && !errors.Is(err, tui.ErrAborted) {
		return err
	}
	return nil
}

// checkURLs writes one result line per URL and returns an error when any of
// them is invalid.
func checkURLs(w io.Writer, urls []string) error {
	invalid := 0
	for _, text := range urls {
		result := validation.CheckURL(text)
		status := "valid"
		if !result.Valid {
			status = "invalid"
			invalid++
		}
		fmt.Fprintf(w, "%s\t%s\n", status, text)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d URLs invalid", invalid, len(urls))
	}
	return nil
}
