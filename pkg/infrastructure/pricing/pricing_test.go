package pricing

import (
	"testing"

	"github.com/domainscout/domainscout/pkg/config"
	"github.com/domainscout/domainscout/pkg/domain/entity"
)

func TestEstimate(t *testing.T) {
	tables, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	estimator := NewEstimator(tables)

	tests := []struct {
		name   string
		domain string
		want   entity.PriceRange
	}{
		{"listed suffix", "example.com", tables.Prices["com"]},
		{"premium suffix", "example.io", tables.Prices["io"]},
		{"upper case suffix", "EXAMPLE.IO", tables.Prices["io"]},
		{"unlisted suffix falls back", "example.xyz", tables.DefaultPrice},
		{"no dot falls back", "localhost", tables.DefaultPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimator.Estimate(tt.domain); got != tt.want {
				t.Errorf("Estimate(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestEstimateKnownRanges(t *testing.T) {
	tables, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	estimator := NewEstimator(tables)

	got := estimator.Estimate("startup.io")
	want := entity.PriceRange{Min: 32, Max: 60}
	if got != want {
		t.Errorf("Estimate(startup.io) = %v, want %v", got, want)
	}
}
