// Package resolver reduces the three probe signals for a domain into
// a single classification.
//
// The reduction is a plurality vote with equal weights. WHOIS
// authority, DNS presence and HTTP reachability measure different
// things and disagreement between them is common (a domain with DNS
// configured but no web server, for instance); with no ground truth
// available the equal weighting is kept as a pragmatic heuristic
// rather than reweighted.
package resolver

import (
	"context"
	"sync"
	"time"

	"github.com/domainscout/domainscout/pkg/domain/entity"
	"github.com/domainscout/domainscout/pkg/domain/service"
	"github.com/domainscout/domainscout/pkg/metrics"
	"go.uber.org/zap"
)

// Resolver implements service.AvailabilityResolver by fanning out to
// all configured probes concurrently.
type Resolver struct {
	probers []service.Prober
	logger  *zap.Logger
}

// New creates a resolver over the given probes.
func New(probers []service.Prober, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{probers: probers, logger: logger}
}

// Resolve implements service.AvailabilityResolver. All probes run
// concurrently; only their values matter, not completion order.
func (r *Resolver) Resolve(ctx context.Context, domain string) (entity.Classification, map[string]string) {
	type outcome struct {
		name   string
		signal entity.Signal
	}

	outcomes := make(chan outcome, len(r.probers))
	var wg sync.WaitGroup

	for _, prober := range r.probers {
		wg.Add(1)
		go func(p service.Prober) {
			defer wg.Done()

			start := time.Now()
			signal := p.Probe(ctx, domain)
			metrics.ObserveProbe(p.Name(), signal.String(), time.Since(start))

			outcomes <- outcome{name: p.Name(), signal: signal}
		}(prober)
	}

	wg.Wait()
	close(outcomes)

	signals := make(map[string]string, len(r.probers))
	collected := make([]entity.Signal, 0, len(r.probers))
	for o := range outcomes {
		signals[o.name] = o.signal.String()
		collected = append(collected, o.signal)
	}

	classification := Vote(collected)
	metrics.ObserveClassification(string(classification))

	r.logger.Debug("domain resolved",
		zap.String("domain", domain),
		zap.Any("signals", signals),
		zap.String("classification", string(classification)),
	)

	return classification, signals
}

// Vote reduces signals by plurality. Indeterminate counts toward
// neither side; any exact tie, the all-indeterminate 0-0 case
// included, is uncertain. Two available signals outweigh one
// registered, even across probe kinds.
func Vote(signals []entity.Signal) entity.Classification {
	var available, registered int
	for _, signal := range signals {
		switch signal {
		case entity.SignalAvailable:
			available++
		case entity.SignalRegistered:
			registered++
		}
	}

	switch {
	case available > registered:
		return entity.ClassificationAvailable
	case registered > available:
		return entity.ClassificationRegistered
	default:
		return entity.ClassificationUncertain
	}
}
