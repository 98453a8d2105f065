// Package domain hostname.go contains domain input normalization.
package domain

import (
	"net/url"
	"strings"
)

// Hostname is a normalized domain: the bare host component of a URL with
// scheme, port, path, query, and credentials discarded. The zero value
// means "no domain entered yet", which is a valid state that merely keeps
// generation gated.
type Hostname string

// NormalizeDomain validates raw input and returns its canonical Hostname.
// Empty input is not an error; it yields the zero Hostname. Input without
// an http/https scheme is parsed as https://<raw>. Returns
// ErrInvalidDomain when parsing fails or yields no host.
func NormalizeDomain(raw string) (Hostname, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	candidate := raw
	if !hasHTTPScheme(candidate) {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Hostname() == "" {
		return "", ErrInvalidDomain
	}
	return Hostname(strings.ToLower(u.Hostname())), nil
}

// IsValidDomain is a convenience wrapper returning true if NormalizeDomain
// reports no error. Empty input counts as valid.
func IsValidDomain(raw string) bool {
	_, err := NormalizeDomain(raw)
	return err == nil
}

// hasHTTPScheme reports whether s already carries an http or https scheme.
func hasHTTPScheme(s string) bool {
	ls := strings.ToLower(s)
	return strings.HasPrefix(ls, "http://") || strings.HasPrefix(ls, "https://")
}

// String returns the hostname as a plain string.
func (h Hostname) String() string { return string(h) }

// IsEmpty reports whether no domain has been entered.
func (h Hostname) IsEmpty() bool { return h == "" }
