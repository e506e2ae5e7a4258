package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

var (
	ErrUnknownTheme   = errors.New("theme: unknown theme")
	ErrUnknownVariant = errors.New("theme: unknown variant")
)

// Catalog is an in-memory theme selector. The first registered manifest is
// the default theme.
type Catalog struct {
	mu          sync.RWMutex
	manifests   map[string]*gotheme.Manifest
	defaultName string
}

var _ gotheme.ThemeSelector = (*Catalog)(nil)

// NewCatalog returns a catalog holding DefaultManifest plus any extras.
func NewCatalog(extra ...*gotheme.Manifest) (*Catalog, error) {
	c := &Catalog{manifests: make(map[string]*gotheme.Manifest)}
	if err := c.Register(DefaultManifest()); err != nil {
		return nil, err
	}
	for _, manifest := range extra {
		if err := c.Register(manifest); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds a manifest. Names are unique.
func (c *Catalog) Register(manifest *gotheme.Manifest) error {
	if err := validateManifest(manifest); err != nil {
		return fmt.Errorf("theme: register: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.manifests[manifest.Name]; exists {
		return fmt.Errorf("theme: manifest %q already registered", manifest.Name)
	}
	c.manifests[manifest.Name] = manifest
	if c.defaultName == "" {
		c.defaultName = manifest.Name
	}
	return nil
}

// Names lists registered themes in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.manifests))
	for name := range c.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a theme and variant. An empty name picks the default theme;
// an empty variant picks the base tokens.
func (c *Catalog) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if name == "" {
		name = c.defaultName
	}
	manifest, ok := c.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w %q for theme %q", ErrUnknownVariant, variant, name)
		}
	}
	return &gotheme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
