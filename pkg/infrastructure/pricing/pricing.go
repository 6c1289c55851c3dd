// Package pricing implements the static price-range estimator.
package pricing

import (
	"strings"

	"github.com/domainscout/domainscout/pkg/config"
	"github.com/domainscout/domainscout/pkg/domain/entity"
)

// Estimator implements service.PriceEstimator as a pure table lookup.
// It performs no network access and cannot fail; suffixes without a
// specific entry get the default range.
type Estimator struct {
	prices       map[string]entity.PriceRange
	defaultPrice entity.PriceRange
}

// NewEstimator creates an estimator from the loaded tables.
func NewEstimator(tables *config.Tables) *Estimator {
	return &Estimator{
		prices:       tables.Prices,
		defaultPrice: tables.DefaultPrice,
	}
}

// Estimate implements service.PriceEstimator.
func (e *Estimator) Estimate(domain string) entity.PriceRange {
	suffix := ""
	if idx := strings.LastIndex(domain, "."); idx >= 0 {
		suffix = strings.ToLower(domain[idx+1:])
	}

	if rng, ok := e.prices[suffix]; ok {
		return rng
	}
	return e.defaultPrice
}
