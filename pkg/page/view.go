package page

import (
	"strconv"
	"strings"
)

const DefaultField = "text"

// ViewOptions carries the per-deployment settings a View is built with.
type ViewOptions struct {
	// Field is the form field name carrying the submitted text.
	Field string
	// BackPath is the target of the "generate another" link.
	BackPath string
	// Notice is trusted (already sanitized) HTML shown under the heading.
	Notice string
	// Style holds CSS custom property declarations for the :root block.
	Style string
	// QR supplies script URL, sizing and colors. Its Text is ignored.
	QR QRCode
}

// View is the template data for one rendered page. String fields that end up
// inside markup unescaped (InputValue, Notice, Style and the QR literals) are
// prepared here.
type View struct {
	Title        string  `json:"title"`
	Field        string  `json:"field"`
	Placeholder  string  `json:"placeholder"`
	InputValue   string  `json:"input_value"`
	ButtonLabel  string  `json:"button_label"`
	ShowQR       bool    `json:"show_qr"`
	ShowError    bool    `json:"show_error"`
	ErrorMessage string  `json:"error_message"`
	BackPath     string  `json:"back_path"`
	BackLinkText string  `json:"back_link_text"`
	Notice       string  `json:"notice"`
	Style        string  `json:"style"`
	QR           *QRView `json:"qr"`
}

// QRView is the script-ready form of QRCode. Payload and the colors are JSON
// string literals.
type QRView struct {
	ScriptURL  string `json:"script_url"`
	Payload    string `json:"payload"`
	SizeRatio  string `json:"size_ratio"`
	MaxSize    string `json:"max_size"`
	ColorDark  string `json:"color_dark"`
	ColorLight string `json:"color_light"`
}

// NewView derives the template data for state.
func NewView(state State, opts ViewOptions) (View, error) {
	field := strings.TrimSpace(opts.Field)
	if field == "" {
		field = DefaultField
	}
	backPath := strings.TrimSpace(opts.BackPath)
	if backPath == "" {
		backPath = "/"
	}

	view := View{
		Title:        Title,
		Field:        field,
		Placeholder:  Placeholder,
		InputValue:   state.InputValue(),
		ButtonLabel:  state.ButtonLabel(),
		ShowQR:       state.ShowQR(),
		ShowError:    state.ShowError(),
		ErrorMessage: ErrorMessage,
		BackPath:     backPath,
		BackLinkText: BackLinkText,
		Notice:       opts.Notice,
		Style:        opts.Style,
	}
	if !view.ShowQR {
		return view, nil
	}

	qr := opts.QR
	qr.Text = state.Text
	qrView, err := newQRView(qr.normalized())
	if err != nil {
		return View{}, err
	}
	view.QR = &qrView
	return view, nil
}

func newQRView(qr QRCode) (QRView, error) {
	payload, err := qr.Payload()
	if err != nil {
		return QRView{}, err
	}
	dark, err := jsonString(qr.ColorDark)
	if err != nil {
		return QRView{}, err
	}
	light, err := jsonString(qr.ColorLight)
	if err != nil {
		return QRView{}, err
	}
	return QRView{
		ScriptURL:  qr.ScriptURL,
		Payload:    payload,
		SizeRatio:  formatRatio(qr.SizeRatio),
		MaxSize:    strconv.Itoa(qr.MaxSize),
		ColorDark:  dark,
		ColorLight: light,
	}, nil
}
