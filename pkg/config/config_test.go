package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/domainscout/domainscout/pkg/domain/entity"
)

func TestLoadEmbedded(t *testing.T) {
	tables, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(tables.TLDs) == 0 {
		t.Error("embedded tables have no TLDs")
	}
	if _, ok := tables.Prices["com"]; !ok {
		t.Error("embedded tables have no price for .com")
	}
	if tables.DefaultPrice.Min <= 0 {
		t.Errorf("default price min = %d, want > 0", tables.DefaultPrice.Min)
	}
	if len(tables.Registrars) < 2 {
		t.Errorf("got %d registrars, want at least 2", len(tables.Registrars))
	}
}

func TestLoadFileOverridesEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `
tlds: [".COM", " net "]
default_price: { min: 7, max: 14 }
prices:
  .Com: { min: 3, max: 9 }
registrars:
  - name: Example
    base_url: "https://registrar.example/?q="
    overrides:
      .NET: "https://registrar.example/net/?q="
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Suffix keys are case-folded and stripped of leading dots.
	if tables.TLDs[0] != "com" || tables.TLDs[1] != "net" {
		t.Errorf("TLDs = %v, want [com net]", tables.TLDs)
	}
	if _, ok := tables.Prices["com"]; !ok {
		t.Errorf("Prices = %v, want key com", tables.Prices)
	}
	if _, ok := tables.Registrars[0].Overrides["net"]; !ok {
		t.Errorf("Overrides = %v, want key net", tables.Registrars[0].Overrides)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on missing file, want error")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Tables {
		return &Tables{
			TLDs:         []string{"com"},
			DefaultPrice: entity.PriceRange{Min: 10, Max: 50},
			Registrars:   []Registrar{{Name: "Example", BaseURL: "https://registrar.example/?q="}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Tables)
		wantErr bool
	}{
		{"valid", func(t *Tables) {}, false},
		{"no tlds", func(t *Tables) { t.TLDs = nil }, true},
		{"empty tld entry", func(t *Tables) { t.TLDs = []string{""} }, true},
		{"zero default price", func(t *Tables) { t.DefaultPrice.Min = 0 }, true},
		{"inverted default price", func(t *Tables) { t.DefaultPrice.Max = 1 }, true},
		{"inverted tld price", func(t *Tables) {
			t.Prices = map[string]entity.PriceRange{"com": {Min: 20, Max: 10}}
		}, true},
		{"no registrars", func(t *Tables) { t.Registrars = nil }, true},
		{"registrar without name", func(t *Tables) { t.Registrars[0].Name = "" }, true},
		{"registrar without base url", func(t *Tables) { t.Registrars[0].BaseURL = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := valid()
			tt.mutate(tables)

			err := tables.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
