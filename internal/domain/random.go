// Package domain random.go contains the random suffix generator.
package domain

import "io"

// Alphabet is the URL-safe character set used for random suffixes: the
// unreserved URL characters A-Z, a-z, 0-9, '-', '.', '_', '~'. Bytes are
// mapped onto it with a modulo, which skews the distribution slightly
// because 256 is not a multiple of the alphabet size. The skew is kept as
// a documented limitation so the output grammar stays stable.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

// RandomString draws n bytes from r and maps each onto Alphabet. The
// reader must be a cryptographically secure source in production
// (crypto/rand.Reader); read failures propagate unchanged so callers fail
// closed instead of degrading to weaker randomness. n <= 0 yields the
// empty string.
func RandomString(r io.Reader, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(out), nil
}

// isSuffixChar reports membership in Alphabet.
func isSuffixChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
	case c >= 'a' && c <= 'z':
	case c >= '0' && c <= '9':
	case c == '-' || c == '.' || c == '_' || c == '~':
	default:
		return false
	}
	return true
}
