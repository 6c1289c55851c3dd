// Package dns implements the DNS availability probe.
package dns

import (
	"context"
	"time"

	"github.com/domainscout/domainscout/pkg/domain/entity"
	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// Prober implements service.Prober via forward A-record resolution.
type Prober struct {
	servers []string
	timeout time.Duration
	client  *dns.Client
	logger  *zap.Logger
}

// Config holds DNS prober configuration.
type Config struct {
	Servers []string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewProber creates a new DNS prober.
func NewProber(config Config) *Prober {
	if len(config.Servers) == 0 {
		config.Servers = []string{
			"8.8.8.8:53",
			"8.8.4.4:53",
			"1.1.1.1:53",
			"1.0.0.1:53",
		}
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return &Prober{
		servers: config.Servers,
		timeout: config.Timeout,
		client: &dns.Client{
			Timeout: config.Timeout,
		},
		logger: config.Logger,
	}
}

// Name implements service.Prober.
func (p *Prober) Name() string {
	return "dns"
}

// Probe implements service.Prober. NXDOMAIN means available, a
// resolved address means registered. No response from any server
// within the timeout maps to available per the connection-failure
// policy.
func (p *Prober) Probe(ctx context.Context, domain string) entity.Signal {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	msg.RecursionDesired = true

	var response *dns.Msg

	for _, server := range p.servers {
		queryCtx, cancel := context.WithTimeout(ctx, p.timeout)
		resp, _, err := p.client.ExchangeContext(queryCtx, msg, server)
		cancel()

		if ctx.Err() != nil {
			return entity.SignalIndeterminate
		}

		if err == nil && resp != nil {
			response = resp
			break
		}
	}

	if response == nil {
		return entity.SignalAvailable
	}

	return p.classify(domain, response)
}

// classify maps a DNS response to a signal.
func (p *Prober) classify(domain string, response *dns.Msg) entity.Signal {
	switch response.Rcode {
	case dns.RcodeNameError:
		return entity.SignalAvailable
	case dns.RcodeSuccess:
		for _, answer := range response.Answer {
			if _, ok := answer.(*dns.A); ok {
				return entity.SignalRegistered
			}
		}
		// The name exists in DNS but does not forward-resolve to an
		// address; neither availability rule applies.
		return entity.SignalIndeterminate
	default:
		p.logger.Debug("unexpected dns rcode",
			zap.String("domain", domain),
			zap.String("rcode", dns.RcodeToString[response.Rcode]),
		)
		return entity.SignalIndeterminate
	}
}
