package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-qrgen/pkg/page"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/validation"
)

const Name = "tui"

// Summary is the terminal view of a page state.
type Summary struct {
	Text    string `json:"text"`
	Valid   bool   `json:"valid"`
	ShowQR  bool   `json:"show_qr"`
	Button  string `json:"button"`
	Message string `json:"message,omitempty"`
}

// Renderer implements render.Renderer for terminals and drives interactive
// URL checking sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	strict       bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unknown output format %q", r.outputFormat)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render serializes the state summary in the configured output format.
func (r *Renderer) Render(ctx context.Context, state page.State, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.serialize(Summarize(state))
}

// Summarize derives the terminal summary for state.
func Summarize(state page.State) Summary {
	summary := Summary{
		Text:   state.Text,
		Valid:  state.Valid,
		ShowQR: state.ShowQR(),
		Button: state.ButtonLabel(),
	}
	if state.ShowError() {
		summary.Message = page.ErrorMessage
	}
	return summary
}

// Ask prompts for one URL and returns its validated state.
func (r *Renderer) Ask(ctx context.Context) (page.State, error) {
	cfg := InputConfig{
		Message: "URL",
		Help:    "Must start with http:// or https://",
	}
	if r.strict {
		cfg.Validator = func(text string) error {
			return validation.CheckURL(text).Err()
		}
	}

	text, err := r.driver.Input(ctx, cfg)
	if err != nil {
		return page.State{}, err
	}
	result := validation.CheckURL(text)
	return page.Submitted(result.Text, result.Valid), nil
}

// Session repeatedly asks for URLs, reporting each result through the driver
// until the user declines to continue. It returns every checked state.
func (r *Renderer) Session(ctx context.Context) ([]page.State, error) {
	var states []page.State
	for {
		state, err := r.Ask(ctx)
		if err != nil {
			return states, err
		}
		states = append(states, state)

		out, err := r.Render(ctx, state, render.RenderOptions{})
		if err != nil {
			return states, err
		}
		if err := r.driver.Info(ctx, strings.TrimSuffix(string(out), "\n")); err != nil {
			return states, err
		}

		again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Check another URL?", Default: true})
		if err != nil {
			return states, err
		}
		if !again {
			return states, nil
		}
	}
}

func (r *Renderer) serialize(summary Summary) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(formEncode(summary)), nil
	case OutputFormatPrettyText:
		return []byte(r.pretty(summary)), nil
	default:
		return json.Marshal(summary)
	}
}

func formEncode(summary Summary) string {
	values := url.Values{}
	values.Set("text", summary.Text)
	values.Set("valid", strconv.FormatBool(summary.Valid))
	values.Set("show_qr", strconv.FormatBool(summary.ShowQR))
	values.Set("button", summary.Button)
	if summary.Message != "" {
		values.Set("message", summary.Message)
	}
	return values.Encode()
}

func (r *Renderer) pretty(summary Summary) string {
	var b strings.Builder
	switch {
	case summary.Text == "":
		fmt.Fprintf(&b, "%sno URL submitted\n", r.theme.InfoPrefix)
	case summary.Valid:
		fmt.Fprintf(&b, "%svalid URL: %s\n", r.theme.InfoPrefix, summary.Text)
	default:
		fmt.Fprintf(&b, "%s%s\n", r.theme.ErrorPrefix, summary.Message)
		fmt.Fprintf(&b, "%sinput: %s\n", r.theme.ErrorPrefix, summary.Text)
	}
	return b.String()
}
