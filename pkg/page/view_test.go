package page

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestState_EmptyShowsBareForm(t *testing.T) {
	state := Empty()
	if state.ShowQR() || state.ShowError() {
		t.Fatalf("expected neither qr nor error for empty state: %+v", state)
	}
	if got := state.ButtonLabel(); got != LabelGenerate {
		t.Fatalf("expected %q, got %q", LabelGenerate, got)
	}
}

func TestState_EmptyInvalidSubmissionBehavesLikeEmpty(t *testing.T) {
	state := Submitted("", false)
	if state.ShowQR() || state.ShowError() {
		t.Fatalf("expected empty submission to show neither qr nor error")
	}
	if got := state.ButtonLabel(); got != LabelGenerate {
		t.Fatalf("expected %q, got %q", LabelGenerate, got)
	}
}

func TestState_ValidAndInvalid(t *testing.T) {
	valid := Submitted("https://example.com", true)
	if !valid.ShowQR() || valid.ShowError() {
		t.Fatalf("unexpected flags for valid state: %+v", valid)
	}
	if got := valid.ButtonLabel(); got != LabelRegenerate {
		t.Fatalf("expected %q, got %q", LabelRegenerate, got)
	}

	invalid := Submitted("not-a-url", false)
	if invalid.ShowQR() || !invalid.ShowError() {
		t.Fatalf("unexpected flags for invalid state: %+v", invalid)
	}
	if got := invalid.ButtonLabel(); got != LabelGenerate {
		t.Fatalf("expected %q, got %q", LabelGenerate, got)
	}
}

func TestEscapeQuotes_OnlyQuotes(t *testing.T) {
	got := EscapeQuotes(`https://example.com/"x"<b>&'`)
	want := `https://example.com/&quot;x&quot;<b>&'`
	if got != want {
		t.Fatalf("escape mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestQRCode_PayloadMatchesJSONStringify(t *testing.T) {
	payload, err := NewQRCode(`https://example.com/?a=1&b=<2>"q"`).Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	want := `"https://example.com/?a=1&b=<2>\"q\""`
	if payload != want {
		t.Fatalf("payload mismatch\nwant: %s\n got: %s", want, payload)
	}
}

func TestNewView_Valid(t *testing.T) {
	view, err := NewView(Submitted("https://example.com", true), ViewOptions{
		BackPath: "/qr",
		QR: QRCode{
			ScriptURL:  "/static/qrcode.min.js",
			SizeRatio:  0.5,
			MaxSize:    256,
			ColorDark:  "#000000",
			ColorLight: "#fefefe",
		},
	})
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	want := &QRView{
		ScriptURL:  "/static/qrcode.min.js",
		Payload:    `"https://example.com"`,
		SizeRatio:  "0.5",
		MaxSize:    "256",
		ColorDark:  `"#000000"`,
		ColorLight: `"#fefefe"`,
	}
	if diff := cmp.Diff(want, view.QR); diff != "" {
		t.Fatalf("qr view mismatch (-want +got):\n%s", diff)
	}
	if view.BackPath != "/qr" || view.Field != DefaultField {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.InputValue != "https://example.com" || view.ButtonLabel != LabelRegenerate {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestNewView_DefaultsQRParameters(t *testing.T) {
	view, err := NewView(Submitted("https://example.com", true), ViewOptions{})
	if err != nil {
		t.Fatalf("new view: %v", err)
	}
	if view.QR == nil {
		t.Fatalf("expected qr view")
	}
	if view.QR.ScriptURL != DefaultScriptURL {
		t.Fatalf("expected default script url, got %q", view.QR.ScriptURL)
	}
	if view.QR.SizeRatio != "0.8" || view.QR.MaxSize != "400" {
		t.Fatalf("unexpected sizing: %+v", view.QR)
	}
	if view.QR.ColorDark != `"#d7263d"` || view.QR.ColorLight != `"#ffffff"` {
		t.Fatalf("unexpected colors: %+v", view.QR)
	}
	if view.BackPath != "/" {
		t.Fatalf("expected default back path, got %q", view.BackPath)
	}
}

func TestNewView_InvalidHasNoQR(t *testing.T) {
	view, err := NewView(Submitted(`https://example.com/"x`, false), ViewOptions{Field: "url"})
	if err != nil {
		t.Fatalf("new view: %v", err)
	}
	if view.QR != nil {
		t.Fatalf("expected no qr view for invalid text")
	}
	if !view.ShowError {
		t.Fatalf("expected error flag")
	}
	if view.InputValue != `https://example.com/&quot;x` {
		t.Fatalf("unexpected input value %q", view.InputValue)
	}
	if view.Field != "url" {
		t.Fatalf("expected custom field, got %q", view.Field)
	}
}
