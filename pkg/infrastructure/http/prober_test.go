package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/domainscout/domainscout/pkg/domain/entity"
)

// probeURL targets the prober at a test server instead of port 80.
func probeURL(t *testing.T, p *Prober, hostport string) entity.Signal {
	t.Helper()
	return p.Probe(context.Background(), hostport)
}

func TestProbeAnyResponseIsRegistered(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"ok", http.StatusOK},
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			p := NewProber(Config{Timeout: time.Second})
			hostport := strings.TrimPrefix(server.URL, "http://")

			if signal := probeURL(t, p, hostport); signal != entity.SignalRegistered {
				t.Errorf("Probe with status %d = %v, want registered", tt.status, signal)
			}
		})
	}
}

func TestProbeConnectionRefusedIsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	hostport := strings.TrimPrefix(server.URL, "http://")
	server.Close() // nothing listening anymore

	p := NewProber(Config{Timeout: time.Second})

	if signal := probeURL(t, p, hostport); signal != entity.SignalAvailable {
		t.Errorf("Probe against closed port = %v, want available", signal)
	}
}

func TestProbeTimeoutYieldsSignalWithinBound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	p := NewProber(Config{Timeout: 200 * time.Millisecond})
	hostport := strings.TrimPrefix(server.URL, "http://")

	start := time.Now()
	signal := probeURL(t, p, hostport)
	elapsed := time.Since(start)

	if signal != entity.SignalAvailable {
		t.Errorf("Probe against hung server = %v, want available", signal)
	}
	if elapsed > time.Second {
		t.Errorf("Probe took %s, want well under a second for a 200ms timeout", elapsed)
	}
}

func TestProbeSendsHeadWithUserAgent(t *testing.T) {
	var method, userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		userAgent = r.UserAgent()
	}))
	defer server.Close()

	p := NewProber(Config{Timeout: time.Second, UserAgent: "domainscout-test"})
	probeURL(t, p, strings.TrimPrefix(server.URL, "http://"))

	if method != http.MethodHead {
		t.Errorf("method = %s, want HEAD", method)
	}
	if userAgent != "domainscout-test" {
		t.Errorf("user agent = %q, want %q", userAgent, "domainscout-test")
	}
}
