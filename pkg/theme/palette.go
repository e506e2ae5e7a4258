package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Palette is a resolved set of design tokens.
type Palette struct {
	Theme   string
	Variant string
	Tokens  map[string]string
}

// DefaultPalette returns the stock palette without going through a selector.
func DefaultPalette() Palette {
	return Palette{Theme: DefaultName, Tokens: DefaultTokens()}
}

// Resolve asks selector for name/variant and merges the stock tokens, the
// manifest tokens and the variant tokens, in that order.
func Resolve(selector gotheme.ThemeSelector, name, variant string) (Palette, error) {
	if selector == nil {
		return Palette{}, errors.New("theme: selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Palette{}, err
	}
	if selection == nil || selection.Manifest == nil {
		return Palette{}, fmt.Errorf("theme: selector returned no manifest for %q", name)
	}

	tokens := DefaultTokens()
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if selection.Variant != "" {
		if v, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for key, value := range v.Tokens {
				tokens[key] = value
			}
		}
	}
	return Palette{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
	}, nil
}

// Token returns the named token, falling back to the stock palette.
func (p Palette) Token(name string) string {
	if value, ok := p.Tokens[name]; ok && value != "" {
		return value
	}
	return DefaultTokens()[name]
}

func (p Palette) QRDark() string  { return p.Token(TokenQRDark) }
func (p Palette) QRLight() string { return p.Token(TokenQRLight) }

// CSSVars maps every token to its custom property name (--token).
func (p Palette) CSSVars() map[string]string {
	if len(p.Tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(p.Tokens))
	for key, value := range p.Tokens {
		out["--"+key] = value
	}
	return out
}

// Style renders a :root block declaring every CSS variable, sorted by name.
func (p Palette) Style() string {
	vars := p.CSSVars()
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("\t\t\t")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("\t\t}")
	return b.String()
}
