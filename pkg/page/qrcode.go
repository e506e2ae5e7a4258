package page

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultScriptURL  = "https://cdnjs.cloudflare.com/ajax/libs/qrcodejs/1.0.0/qrcode.min.js"
	DefaultSizeRatio  = 0.8
	DefaultMaxSize    = 400
	DefaultColorDark  = "#d7263d"
	DefaultColorLight = "#ffffff"
)

// QRCode holds the parameters of the client-side QRCode invocation. The
// rendered size is min(viewport width * SizeRatio, MaxSize) pixels.
type QRCode struct {
	Text       string
	ScriptURL  string
	SizeRatio  float64
	MaxSize    int
	ColorDark  string
	ColorLight string
}

// NewQRCode returns the invocation for text with the default parameters.
func NewQRCode(text string) QRCode {
	return QRCode{
		Text:       text,
		ScriptURL:  DefaultScriptURL,
		SizeRatio:  DefaultSizeRatio,
		MaxSize:    DefaultMaxSize,
		ColorDark:  DefaultColorDark,
		ColorLight: DefaultColorLight,
	}
}

// Payload returns Text as a JSON string literal suitable for inline script.
func (q QRCode) Payload() (string, error) {
	return jsonString(q.Text)
}

func (q QRCode) normalized() QRCode {
	if strings.TrimSpace(q.ScriptURL) == "" {
		q.ScriptURL = DefaultScriptURL
	}
	if q.SizeRatio <= 0 || q.SizeRatio > 1 {
		q.SizeRatio = DefaultSizeRatio
	}
	if q.MaxSize <= 0 {
		q.MaxSize = DefaultMaxSize
	}
	if strings.TrimSpace(q.ColorDark) == "" {
		q.ColorDark = DefaultColorDark
	}
	if strings.TrimSpace(q.ColorLight) == "" {
		q.ColorLight = DefaultColorLight
	}
	return q
}

// jsonString encodes s the way JSON.stringify does: <, > and & stay literal.
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("page: encode json string: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func formatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', -1, 64)
}
