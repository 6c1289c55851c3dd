package entity

import (
	"fmt"
	"time"
)

// Signal is the tri-state outcome of a single availability probe.
// A probe that cannot decide either way reports SignalIndeterminate
// instead of failing.
type Signal int

const (
	SignalIndeterminate Signal = iota
	SignalAvailable
	SignalRegistered
)

// String returns the wire/display name of the signal.
func (s Signal) String() string {
	switch s {
	case SignalAvailable:
		return "available"
	case SignalRegistered:
		return "registered"
	default:
		return "indeterminate"
	}
}

// Classification is the final per-domain verdict derived from the
// three probe signals. It is never set directly by callers.
type Classification string

const (
	ClassificationAvailable      Classification = "available"
	ClassificationRegistered     Classification = "registered"
	ClassificationUncertain      Classification = "uncertain"
	ClassificationUnsupportedTLD Classification = "unsupported-tld"
)

// Placeholder is the cell value used for price and links on records
// that never reached the probes (unsupported TLD).
const Placeholder = "-"

// PriceRange is a static yearly price estimate for one TLD.
type PriceRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// String renders the range in the stable output format.
func (p PriceRange) String() string {
	return fmt.Sprintf("$%d - $%d/year", p.Min, p.Max)
}

// RegistrarLink is an outbound purchase/search URL for one registrar.
type RegistrarLink struct {
	Registrar string `json:"registrar"`
	URL       string `json:"url"`
}

// ResultRecord is one output row per input domain. Records are created
// by the batch use case and never mutated afterwards; their order in
// the batch output matches the input order.
type ResultRecord struct {
	Index          int               `json:"-"`
	Domain         string            `json:"domain"`
	Classification Classification    `json:"classification"`
	Signals        map[string]string `json:"signals,omitempty"`
	Price          string            `json:"price"`
	Links          []RegistrarLink   `json:"links,omitempty"`
	CheckedAt      time.Time         `json:"checked_at"`
}

// Metrics holds batch progress counters for observers.
type Metrics struct {
	Total          int
	Done           int
	Available      int64
	Registered     int64
	Uncertain      int64
	UnsupportedTLD int64
	StartTime      time.Time
}
