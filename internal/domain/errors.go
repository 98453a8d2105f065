// Package domain errors.go contains sentinel errors
package domain

import "errors"

// Sentinel domain-level errors reused by higher layers.
var (
	ErrInvalidDomain = errors.New("invalid domain")
	ErrUnknownTier   = errors.New("unknown security tier")
)
