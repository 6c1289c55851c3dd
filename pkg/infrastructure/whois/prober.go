// Package whois implements the WHOIS availability probe.
//
// The probe treats any lookup failure as an available signal: an
// unreachable WHOIS server is indistinguishable from a genuinely free
// domain. This is an accepted approximation and a known source of
// false availables, not a bug to tighten.
package whois

import (
	"context"
	"strings"
	"time"

	"github.com/domainscout/domainscout/pkg/domain/entity"
	"github.com/likexian/whois"
	"go.uber.org/zap"
)

// Markers that indicate the domain is registered. A record carrying
// any of these has a populated registration body.
var registeredMarkers = []string{
	"creation date:",
	"created:",
	"registrar:",
	"registrant:",
	"registry expiry date:",
	"expiration date:",
	"name server:",
	"nameserver:",
	"nserver:",
	"registrar iana id:",
	"domain status:",
	"dnssec:",
}

// Markers that indicate a protocol-level "no match" response.
var availableMarkers = []string{
	"no match for",
	"not found",
	"no entries found",
	"domain not found",
	"no data found",
	"status: free",
	"status: available",
	"no object found",
	"object does not exist",
	"the queried object does not exist",
	"no such domain",
	"domain name has not been registered",
	"no matching record",
	"is available for registration",
}

// Prober implements service.Prober over the WHOIS protocol.
type Prober struct {
	client  *whois.Client
	timeout time.Duration
	logger  *zap.Logger
}

// Config holds WHOIS prober configuration.
type Config struct {
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewProber creates a new WHOIS prober.
func NewProber(config Config) *Prober {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return &Prober{
		client:  whois.NewClient().SetTimeout(config.Timeout),
		timeout: config.Timeout,
		logger:  config.Logger,
	}
}

// Name implements service.Prober.
func (p *Prober) Name() string {
	return "whois"
}

// Probe implements service.Prober. Lookup failures map to available,
// unparseable responses to indeterminate; no error crosses this
// boundary.
func (p *Prober) Probe(ctx context.Context, domain string) entity.Signal {
	type lookup struct {
		body string
		err  error
	}

	// The whois client has no context support; its own timeout bounds
	// the call, the channel lets an aborted batch stop waiting.
	ch := make(chan lookup, 1)
	go func() {
		body, err := p.client.Whois(domain)
		ch <- lookup{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return entity.SignalIndeterminate
	case res := <-ch:
		if res.err != nil {
			return entity.SignalAvailable
		}
		return p.interpret(domain, res.body)
	}
}

// interpret maps a WHOIS response body to a signal.
func (p *Prober) interpret(domain, body string) entity.Signal {
	lower := strings.ToLower(body)

	for _, marker := range registeredMarkers {
		if strings.Contains(lower, marker) {
			return entity.SignalRegistered
		}
	}

	for _, marker := range availableMarkers {
		if strings.Contains(lower, marker) {
			return entity.SignalAvailable
		}
	}

	// Reachable server, recognizable as neither a record nor a
	// no-match response.
	p.logger.Debug("unrecognized whois response",
		zap.String("domain", domain),
		zap.Int("body_length", len(body)),
	)
	return entity.SignalIndeterminate
}
