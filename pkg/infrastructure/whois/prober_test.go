package whois

import (
	"context"
	"testing"
	"time"

	"github.com/domainscout/domainscout/pkg/domain/entity"
)

func TestInterpret(t *testing.T) {
	p := NewProber(Config{Timeout: time.Second})

	tests := []struct {
		name     string
		body     string
		expected entity.Signal
	}{
		{
			"registered record",
			"Domain Name: EXAMPLE.COM\nRegistrar: Example Registrar\nCreation Date: 1995-08-14T04:00:00Z\n",
			entity.SignalRegistered,
		},
		{
			"creation date only",
			"created: 2001-01-01\n",
			entity.SignalRegistered,
		},
		{
			"no match",
			"No match for \"SURELY-FREE-DOMAIN.COM\".\n",
			entity.SignalAvailable,
		},
		{
			"not found variant",
			"Domain not found.\n",
			entity.SignalAvailable,
		},
		{
			"status free",
			"Status: free\n",
			entity.SignalAvailable,
		},
		{
			"unrecognizable body",
			"% rate limit exceeded, try again later\n",
			entity.SignalIndeterminate,
		},
		{
			"empty body",
			"",
			entity.SignalIndeterminate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := p.interpret("example.com", tt.body); result != tt.expected {
				t.Errorf("interpret(%q) = %v, want %v", tt.body, result, tt.expected)
			}
		})
	}
}

func TestProbeCancelledContext(t *testing.T) {
	p := NewProber(Config{Timeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if signal := p.Probe(ctx, "example.com"); signal != entity.SignalIndeterminate {
		t.Errorf("Probe with cancelled context = %v, want indeterminate", signal)
	}
}
