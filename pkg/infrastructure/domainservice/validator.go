// Package domainservice implements domain-name services backed by the
// static configuration tables.
package domainservice

import (
	"fmt"
	"strings"
)

// UnsupportedSuffixError reports a domain whose TLD is not in the
// supported set. It is a user-input problem, never fatal to a batch.
type UnsupportedSuffixError struct {
	Domain string
	Suffix string
}

func (e *UnsupportedSuffixError) Error() string {
	if e.Suffix == "" {
		return fmt.Sprintf("domain %q has no TLD suffix", e.Domain)
	}
	return fmt.Sprintf("unsupported TLD %q in domain %q", e.Suffix, e.Domain)
}

// Validator implements service.SuffixValidator over a fixed suffix
// set. The set is immutable after construction, so Validate is safe
// for concurrent use without locking.
type Validator struct {
	suffixes map[string]struct{}
}

// NewValidator creates a validator for the given supported TLDs.
func NewValidator(tlds []string) *Validator {
	suffixes := make(map[string]struct{}, len(tlds))
	for _, tld := range tlds {
		suffixes[strings.ToLower(strings.TrimPrefix(tld, "."))] = struct{}{}
	}
	return &Validator{suffixes: suffixes}
}

// Validate implements service.SuffixValidator. The suffix is the
// case-folded substring after the last dot.
func (v *Validator) Validate(domain string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(domain))

	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 || idx == 0 {
		return "", &UnsupportedSuffixError{Domain: domain}
	}

	suffix := name[idx+1:]
	if _, ok := v.suffixes[suffix]; !ok {
		return "", &UnsupportedSuffixError{Domain: domain, Suffix: suffix}
	}

	return suffix, nil
}
