package domain

import (
	"crypto/rand"
	"errors"
	"regexp"
	"testing"
	"testing/iotest"

	"pgregory.net/rapid"
)

var (
	standardKeyRe = regexp.MustCompile(`^sk_[A-Za-z0-9_-]{8}_[A-Za-z0-9._~-]{20}$`)
	highKeyRe     = regexp.MustCompile(`^sk_live_[A-Za-z0-9_-]{8}_[A-Za-z0-9._~-]{47}$`)
)

func TestNewTokenStandard(t *testing.T) {
	cfg, _ := TierStandard.Config()
	tok, err := NewToken(cfg, "example.com", 1700000000000, rand.Reader)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}
	if len(tok.Value) != cfg.TotalLength {
		t.Fatalf("length %d, want %d", len(tok.Value), cfg.TotalLength)
	}
	if !standardKeyRe.MatchString(tok.Value) {
		t.Fatalf("token %q does not match the standard grammar", tok.Value)
	}
	if tok.Value != tok.Prefix+tok.Fingerprint+"_"+tok.RandomSuffix {
		t.Fatalf("token components inconsistent: %+v", tok)
	}
	if tok.Fingerprint != Fingerprint("example.com", 1700000000000) {
		t.Fatalf("fingerprint mismatch: %q", tok.Fingerprint)
	}
	if tok.IssuedAtMillis != 1700000000000 {
		t.Fatalf("issued at %d", tok.IssuedAtMillis)
	}
	if !tok.Valid() {
		t.Fatalf("assembled token failed its own grammar check: %+v", tok)
	}
}

func TestNewTokenHigh(t *testing.T) {
	cfg, _ := TierHigh.Config()
	tok, err := NewToken(cfg, "shop.example.com", 1700000000000, rand.Reader)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}
	if len(tok.Value) != 64 {
		t.Fatalf("length %d, want 64", len(tok.Value))
	}
	if !highKeyRe.MatchString(tok.Value) {
		t.Fatalf("token %q does not match the high-tier grammar", tok.Value)
	}
	if len(tok.RandomSuffix) != 47 {
		t.Fatalf("suffix length %d, want 47", len(tok.RandomSuffix))
	}
}

// A TierConfig whose arithmetic goes negative clamps the suffix to empty
// rather than failing; the token comes out shorter than TotalLength.
func TestNewTokenClampsNegativeSuffix(t *testing.T) {
	cfg := TierConfig{Prefix: "sk_live_", TotalLength: 10}
	tok, err := NewToken(cfg, "example.com", 1700000000000, rand.Reader)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}
	if tok.RandomSuffix != "" {
		t.Fatalf("expected empty suffix, got %q", tok.RandomSuffix)
	}
	if tok.Value != cfg.Prefix+tok.Fingerprint+"_" {
		t.Fatalf("unexpected clamped token %q", tok.Value)
	}
	if !tok.Valid() {
		t.Fatalf("clamped token must still satisfy the grammar")
	}
}

func TestNewTokenRandFailure(t *testing.T) {
	boom := errors.New("entropy exhausted")
	cfg, _ := TierStandard.Config()
	tok, err := NewToken(cfg, "example.com", 1700000000000, iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Fatalf("expected source error to propagate, got %v", err)
	}
	if tok != (Token{}) {
		t.Fatalf("expected zero token on failure, got %+v", tok)
	}
}

func TestTokenValidRejectsTampering(t *testing.T) {
	cfg, _ := TierStandard.Config()
	tok, err := NewToken(cfg, "example.com", 1700000000000, rand.Reader)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	bad := tok
	bad.Value = bad.Value[:len(bad.Value)-1] + "!"
	if bad.Valid() {
		t.Fatalf("tampered value passed the grammar check")
	}

	bad = tok
	bad.Fingerprint = "short"
	if bad.Valid() {
		t.Fatalf("short fingerprint passed the grammar check")
	}
}

func TestNewTokenGrammarProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.SampledFrom([]string{"sk_", "sk_live_"}).Draw(t, "prefix")
		total := rapid.IntRange(0, 100).Draw(t, "total")
		cfg := TierConfig{Prefix: prefix, TotalLength: total}
		tok, err := NewToken(cfg, "example.com", 1700000000000, rand.Reader)
		if err != nil {
			t.Fatalf("NewToken error: %v", err)
		}
		if !tok.Valid() {
			t.Fatalf("token %+v violates the grammar", tok)
		}
		want := total
		if floor := len(prefix) + FingerprintLength + 1; total < floor {
			want = floor
		}
		if len(tok.Value) != want {
			t.Fatalf("length %d, want %d (total %d)", len(tok.Value), want, total)
		}
	})
}
