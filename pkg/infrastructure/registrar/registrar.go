// Package registrar implements the purchase-link builder.
package registrar

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/domainscout/domainscout/pkg/config"
)

// Builder implements service.LinkBuilder from the configured registrar
// table. Links are generated for every classification; even a taken or
// uncertain domain is worth double-checking at the registrar.
type Builder struct {
	order      []string
	registrars map[string]config.Registrar
}

// NewBuilder creates a builder from the loaded tables.
func NewBuilder(tables *config.Tables) *Builder {
	order := make([]string, 0, len(tables.Registrars))
	registrars := make(map[string]config.Registrar, len(tables.Registrars))

	for _, reg := range tables.Registrars {
		order = append(order, reg.Name)
		registrars[reg.Name] = reg
	}

	return &Builder{order: order, registrars: registrars}
}

// Registrars implements service.LinkBuilder.
func (b *Builder) Registrars() []string {
	return b.order
}

// Build implements service.LinkBuilder. The domain is percent-encoded
// and appended to the registrar's base search URL, honouring per-TLD
// overrides.
func (b *Builder) Build(domain, registrar string) (string, error) {
	reg, ok := b.registrars[registrar]
	if !ok {
		return "", fmt.Errorf("unknown registrar: %s", registrar)
	}

	base := reg.BaseURL
	if idx := strings.LastIndex(domain, "."); idx >= 0 {
		if override, ok := reg.Overrides[strings.ToLower(domain[idx+1:])]; ok {
			base = override
		}
	}

	return base + url.QueryEscape(domain), nil
}
