// Package domain fingerprint.go derives the short binding tag embedded in
// every generated key.
package domain

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// FingerprintLength is the fixed fingerprint size in characters.
const FingerprintLength = 8

var fingerprintReplacer = strings.NewReplacer("+", "-", "/", "_", "=", "")

// Fingerprint derives the binding tag for a hostname at an issuance
// timestamp in unix milliseconds: standard base64 of
// "<host>-<millis>", made URL-safe, truncated to FingerprintLength.
//
// The fingerprint is NOT a secret and carries no security. It exists so a
// human can visually associate a key with the domain it was issued for.
// Truncation means collisions are possible and expected.
func Fingerprint(host Hostname, issuedAtMillis int64) string {
	seed := host.String() + "-" + strconv.FormatInt(issuedAtMillis, 10)
	enc := fingerprintReplacer.Replace(base64.StdEncoding.EncodeToString([]byte(seed)))
	if len(enc) > FingerprintLength {
		enc = enc[:FingerprintLength]
	}
	return enc
}

// isFingerprintChar reports membership in the URL-safe base64 alphabet.
func isFingerprintChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
	case c >= 'a' && c <= 'z':
	case c >= '0' && c <= '9':
	case c == '-' || c == '_':
	default:
		return false
	}
	return true
}
