package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

const (
	DefaultName    = "qrgen"
	DefaultVersion = "1.0.0"

	TokenQRDark  = "qr-dark"
	TokenQRLight = "qr-light"
)

// DefaultTokens returns the stock palette.
func DefaultTokens() map[string]string {
	return map[string]string{
		"bg":           "#f9fafb",
		"card-bg":      "#ffffff",
		"accent":       "#d7263d",
		"accent-hover": "#a81d2b",
		"border":       "#d1d5db",
		"text":         "#111827",
		"error":        "#dc2626",
		TokenQRDark:    "#d7263d",
		TokenQRLight:   "#ffffff",
	}
}

// DefaultManifest returns the built-in manifest with a "dark" variant.
func DefaultManifest() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    DefaultName,
		Version: DefaultVersion,
		Tokens:  DefaultTokens(),
		Variants: map[string]gotheme.Variant{
			"dark": {
				Tokens: map[string]string{
					"bg":      "#111827",
					"card-bg": "#1f2937",
					"text":    "#f9fafb",
					"border":  "#374151",
				},
			},
		},
	}
}

type manifestFile struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Variants map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens map[string]string `yaml:"tokens"`
}

// LoadManifestFile reads a YAML manifest:
//
//	name: midnight
//	version: 1.0.0
//	tokens:
//	  accent: "#2563eb"
//	variants:
//	  dark:
//	    tokens:
//	      bg: "#000000"
func LoadManifestFile(path string) (*gotheme.Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("theme: manifest path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read manifest: %w", err)
	}
	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}
	return manifest, nil
}

// ParseManifest decodes a YAML manifest payload.
func ParseManifest(data []byte) (*gotheme.Manifest, error) {
	var raw manifestFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	manifest := &gotheme.Manifest{
		Name:    strings.TrimSpace(raw.Name),
		Version: strings.TrimSpace(raw.Version),
		Tokens:  copyTokens(raw.Tokens),
	}
	if manifest.Version == "" {
		manifest.Version = DefaultVersion
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]gotheme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			manifest.Variants[strings.TrimSpace(name)] = gotheme.Variant{
				Tokens: copyTokens(variant.Tokens),
			}
		}
	}
	if err := validateManifest(manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

func validateManifest(manifest *gotheme.Manifest) error {
	if manifest == nil {
		return errors.New("manifest is nil")
	}
	if manifest.Name == "" {
		return errors.New("manifest name is required")
	}
	if err := validateTokens(manifest.Tokens); err != nil {
		return err
	}
	for name, variant := range manifest.Variants {
		if name == "" {
			return errors.New("variant name is required")
		}
		if err := validateTokens(variant.Tokens); err != nil {
			return fmt.Errorf("variant %q: %w", name, err)
		}
	}
	return nil
}

// Token values land verbatim inside a <style> block and a script literal.
func validateTokens(tokens map[string]string) error {
	for name, value := range tokens {
		if name == "" || strings.ContainsAny(name, " \t\n:;{}<>\"'") {
			return fmt.Errorf("invalid token name %q", name)
		}
		if strings.ContainsAny(value, ";{}<>\"'\\\n") {
			return fmt.Errorf("invalid value for token %q", name)
		}
	}
	return nil
}

func copyTokens(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
