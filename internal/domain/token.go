// Package domain token.go assembles and validates generated keys.
package domain

import (
	"io"
	"strings"
)

// Token is one issued API key. It is immutable after assembly; callers
// only display, copy, or re-display it.
type Token struct {
	Prefix         string
	Fingerprint    string
	RandomSuffix   string
	Value          string
	IssuedAtMillis int64
}

// NewToken assembles a key for host under cfg at issuedAtMillis, drawing
// the random suffix from rnd.
//
// The suffix length is TotalLength - len(Prefix) - FingerprintLength - 1,
// the 1 being the underscore separating fingerprint and suffix. A
// configuration whose arithmetic goes negative is clamped to an empty
// suffix, so the token comes out shorter than TotalLength; neither
// built-in tier can hit this.
func NewToken(cfg TierConfig, host Hostname, issuedAtMillis int64, rnd io.Reader) (Token, error) {
	fp := Fingerprint(host, issuedAtMillis)
	randomLen := cfg.TotalLength - len(cfg.Prefix) - len(fp) - 1
	suffix, err := RandomString(rnd, randomLen)
	if err != nil {
		return Token{}, err
	}
	return Token{
		Prefix:         cfg.Prefix,
		Fingerprint:    fp,
		RandomSuffix:   suffix,
		Value:          cfg.Prefix + fp + "_" + suffix,
		IssuedAtMillis: issuedAtMillis,
	}, nil
}

// String returns the assembled key.
func (t Token) String() string { return t.Value }

// Valid reports whether the token satisfies the key grammar:
// prefix, FingerprintLength chars of URL-safe base64, an underscore, and
// a suffix drawn from Alphabet.
func (t Token) Valid() bool {
	if t.Value != t.Prefix+t.Fingerprint+"_"+t.RandomSuffix {
		return false
	}
	if !strings.HasPrefix(t.Value, t.Prefix) || t.Prefix == "" {
		return false
	}
	if len(t.Fingerprint) != FingerprintLength {
		return false
	}
	for i := 0; i < len(t.Fingerprint); i++ {
		if !isFingerprintChar(t.Fingerprint[i]) {
			return false
		}
	}
	for i := 0; i < len(t.RandomSuffix); i++ {
		if !isSuffixChar(t.RandomSuffix[i]) {
			return false
		}
	}
	return true
}
