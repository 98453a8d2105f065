// Package app contains the application orchestration layer for the key
// generator. It wires domain validation and token assembly with the
// injected history, clock, and randomness ports without performing any
// I/O itself.
package app

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/124-hue/APIkeygenerator/internal/domain"
)

// ErrNotGenerateable indicates Generate was called without a valid,
// non-empty domain in the session.
var ErrNotGenerateable = errors.New("domain not generateable")

// ErrNoSuchEntry indicates a history reuse index that is out of range.
var ErrNoSuchEntry = errors.New("no such history entry")

// Service owns the live state of one generator session: the raw domain
// input, its normalized hostname and validity, the active tier, and the
// currently displayed token. The core model is one logical caller at a
// time; the mutex exists so a concurrent delivery adapter (HTTP) observes
// the same sequential semantics. Multi-tenant embedders must construct
// one Service per tenant — history is not tenant-scoped.
type Service struct {
	history HistoryStore
	clock   Clock
	rand    io.Reader

	mu       sync.Mutex
	rawInput string
	hostname domain.Hostname
	valid    bool
	tier     domain.Tier
	token    domain.Token
}

// New constructs a Service. rnd must be a cryptographically secure source
// in production (crypto/rand.Reader); tests may inject a deterministic
// reader. An invalid tier falls back to TierStandard.
func New(history HistoryStore, clock Clock, rnd io.Reader, tier domain.Tier) *Service {
	if !tier.Valid() {
		tier = domain.TierStandard
	}
	return &Service{
		history: history,
		clock:   clock,
		rand:    rnd,
		valid:   true, // empty input is the valid "no domain yet" state
		tier:    tier,
	}
}

// SetDomainInput normalizes raw and synchronously recomputes the
// session's validity signal. ErrInvalidDomain is recoverable: the session
// keeps the raw input, generation stays disabled, and no token is
// produced.
func (s *Service) SetDomainInput(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawInput = raw
	host, err := domain.NormalizeDomain(raw)
	if err != nil {
		s.hostname = ""
		s.valid = false
		return err
	}
	s.hostname = host
	s.valid = true
	return nil
}

// IsGenerateable reports whether a key can be generated right now: the
// current input must be valid and non-empty.
func (s *Service) IsGenerateable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valid && !s.hostname.IsEmpty()
}

// SetTier switches the active tier. Already-issued tokens are unaffected;
// only the next generation request sees the change.
func (s *Service) SetTier(t domain.Tier) error {
	if !t.Valid() {
		return domain.ErrUnknownTier
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tier = t
	return nil
}

// Tier returns the session's active tier.
func (s *Service) Tier() domain.Tier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tier
}

// Generate issues a new key for the current domain. The zero tier ("")
// uses the session's active tier. The result is recorded in history and
// becomes the session's displayed token. Randomness failure aborts the
// operation with nothing recorded; there is no fallback and no retry.
func (s *Service) Generate(tier domain.Tier) (domain.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tier == "" {
		tier = s.tier
	}
	cfg, err := tier.Config()
	if err != nil {
		return domain.Token{}, err
	}
	if !s.valid || s.hostname.IsEmpty() {
		return domain.Token{}, ErrNotGenerateable
	}
	issuedAt := s.clock.Now().UnixMilli()
	tok, err := domain.NewToken(cfg, s.hostname, issuedAt, s.rand)
	if err != nil {
		return domain.Token{}, fmt.Errorf("draw random suffix: %w", err)
	}
	s.token = tok
	s.history.Record(domain.HistoryEntry{Domain: s.hostname.String(), Token: tok.Value})
	return tok, nil
}

// Hostname returns the session's normalized hostname.
func (s *Service) Hostname() domain.Hostname {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hostname
}

// Token returns the session's currently displayed token.
func (s *Service) Token() domain.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// HistoryEntries returns the recorded keys, most recently issued first.
func (s *Service) HistoryEntries() []domain.HistoryEntry {
	return s.history.Entries()
}

// Reuse copies history entry i (0 = most recent) back into the session's
// displayed state. Nothing is re-derived, re-validated, or regenerated.
func (s *Service) Reuse(i int) (domain.HistoryEntry, error) {
	entries := s.history.Entries()
	if i < 0 || i >= len(entries) {
		return domain.HistoryEntry{}, ErrNoSuchEntry
	}
	e := entries[i]
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawInput = e.Domain
	s.hostname = domain.Hostname(e.Domain)
	s.valid = true
	s.token = domain.Token{Value: e.Token}
	return e, nil
}
