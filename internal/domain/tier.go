// Package domain tier.go contains the security tier policy table.
package domain

import "strings"

// Tier selects how strong a generated key is. Switching tiers never
// affects already-issued tokens; it only changes the configuration used
// by the next generation request.
type Tier string

// Known tiers.
const (
	TierStandard Tier = "standard"
	TierHigh     Tier = "high"
)

// TierConfig pairs a key prefix with the total token length the tier
// produces.
type TierConfig struct {
	Prefix      string
	TotalLength int
}

var tierConfigs = map[Tier]TierConfig{
	TierStandard: {Prefix: "sk_", TotalLength: 32},
	TierHigh:     {Prefix: "sk_live_", TotalLength: 64},
}

// ParseTier validates s (case-insensitive, whitespace-trimmed) as a known
// tier selector. Returns ErrUnknownTier on failure.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tierConfigs[t]; !ok {
		return "", ErrUnknownTier
	}
	return t, nil
}

// String returns the tier selector.
func (t Tier) String() string { return string(t) }

// Valid reports whether the tier is one of the known selectors.
func (t Tier) Valid() bool {
	_, ok := tierConfigs[t]
	return ok
}

// Config returns the tier's prefix and total-length configuration.
func (t Tier) Config() (TierConfig, error) {
	cfg, ok := tierConfigs[t]
	if !ok {
		return TierConfig{}, ErrUnknownTier
	}
	return cfg, nil
}
