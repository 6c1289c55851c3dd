// Package http implements the HTTP reachability probe.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/domainscout/domainscout/pkg/domain/entity"
)

// Prober implements service.Prober with a HEAD request to the plain
// HTTP endpoint of the domain.
type Prober struct {
	client    *http.Client
	userAgent string
}

// Config holds HTTP prober configuration.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// NewProber creates a new HTTP prober.
func NewProber(config Config) *Prober {
	return &Prober{
		client: &http.Client{
			Timeout: config.Timeout,
			// Any response already answers the question; redirects
			// are not worth a second round-trip.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: config.UserAgent,
	}
}

// Name implements service.Prober.
func (p *Prober) Name() string {
	return "http"
}

// Probe implements service.Prober. Any HTTP response, error status
// codes included, means something is listening. Transport failures
// and timeouts map to available.
func (p *Prober) Probe(ctx context.Context, domain string) entity.Signal {
	url := fmt.Sprintf("http://%s", domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return entity.SignalAvailable
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return entity.SignalIndeterminate
		}
		return entity.SignalAvailable
	}
	resp.Body.Close()

	return entity.SignalRegistered
}
