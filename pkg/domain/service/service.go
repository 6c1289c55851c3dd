package service

import (
	"context"

	"github.com/domainscout/domainscout/pkg/domain/entity"
)

// Prober is a single availability signal source (WHOIS, DNS, HTTP).
// Implementations must fold every network or parse failure into a
// Signal value; no error ever crosses this boundary.
type Prober interface {
	// Name identifies the probe in signal breakdowns and metrics.
	Name() string
	// Probe checks one domain and returns a tri-state signal.
	Probe(ctx context.Context, domain string) entity.Signal
}

// SuffixValidator checks a raw domain string against the supported
// TLD set before any network call is made.
type SuffixValidator interface {
	// Validate returns the case-folded suffix, or an error when the
	// domain has no suffix or the suffix is not supported.
	Validate(domain string) (string, error)
}

// AvailabilityResolver reduces the three probe signals for one domain
// into a final classification.
type AvailabilityResolver interface {
	// Resolve runs all probes and returns the classification together
	// with the per-probe signal breakdown keyed by probe name.
	Resolve(ctx context.Context, domain string) (entity.Classification, map[string]string)
}

// PriceEstimator maps a domain's TLD to a static price range.
type PriceEstimator interface {
	// Estimate never fails; unlisted suffixes get the default range.
	Estimate(domain string) entity.PriceRange
}

// LinkBuilder builds outbound purchase/search URLs per registrar.
type LinkBuilder interface {
	// Registrars returns the configured registrar names in order.
	Registrars() []string
	// Build returns the search URL for a domain at one registrar.
	// An unrecognized registrar name is a programmer error.
	Build(domain, registrar string) (string, error)
}
