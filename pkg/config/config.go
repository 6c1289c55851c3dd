// Package config loads the static lookup tables: the supported TLD
// set, per-TLD price estimates and registrar base URLs. Tables are
// loaded once at startup and shared read-only afterwards.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/domainscout/domainscout/pkg/domain/entity"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var embeddedTables []byte

// Registrar describes one registrar's search URL, with optional
// per-TLD overrides.
type Registrar struct {
	Name      string            `yaml:"name"`
	BaseURL   string            `yaml:"base_url"`
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

// Tables holds all static lookup data.
type Tables struct {
	TLDs         []string                     `yaml:"tlds"`
	DefaultPrice entity.PriceRange            `yaml:"default_price"`
	Prices       map[string]entity.PriceRange `yaml:"prices"`
	Registrars   []Registrar                  `yaml:"registrars"`
}

// Load reads tables from path, or from the embedded defaults when
// path is empty.
func Load(path string) (*Tables, error) {
	raw := embeddedTables
	source := "embedded tables.yaml"

	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read tables from %s: %w", path, err)
		}
		source = path
	}

	var tables Tables
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse tables from %s: %w", source, err)
	}

	tables.normalize()

	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tables in %s: %w", source, err)
	}

	return &tables, nil
}

// normalize lower-cases every suffix key so lookups are case-folded.
func (t *Tables) normalize() {
	for i, tld := range t.TLDs {
		t.TLDs[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(tld, ".")))
	}

	prices := make(map[string]entity.PriceRange, len(t.Prices))
	for tld, rng := range t.Prices {
		prices[strings.ToLower(strings.TrimPrefix(tld, "."))] = rng
	}
	t.Prices = prices

	for i := range t.Registrars {
		overrides := make(map[string]string, len(t.Registrars[i].Overrides))
		for tld, base := range t.Registrars[i].Overrides {
			overrides[strings.ToLower(strings.TrimPrefix(tld, "."))] = base
		}
		t.Registrars[i].Overrides = overrides
	}
}

// Validate validates the loaded tables.
func (t *Tables) Validate() error {
	if len(t.TLDs) == 0 {
		return fmt.Errorf("no supported TLDs configured")
	}

	for _, tld := range t.TLDs {
		if tld == "" {
			return fmt.Errorf("empty TLD entry")
		}
	}

	if t.DefaultPrice.Min <= 0 || t.DefaultPrice.Max < t.DefaultPrice.Min {
		return fmt.Errorf("invalid default price range %d-%d", t.DefaultPrice.Min, t.DefaultPrice.Max)
	}

	for tld, rng := range t.Prices {
		if rng.Min <= 0 || rng.Max < rng.Min {
			return fmt.Errorf("invalid price range %d-%d for TLD %q", rng.Min, rng.Max, tld)
		}
	}

	if len(t.Registrars) == 0 {
		return fmt.Errorf("no registrars configured")
	}

	for _, reg := range t.Registrars {
		if reg.Name == "" {
			return fmt.Errorf("registrar with empty name")
		}
		if reg.BaseURL == "" {
			return fmt.Errorf("registrar %s has no base URL", reg.Name)
		}
	}

	return nil
}
