// Package app defines the application layer "ports" (interfaces) that the
// key generation use-cases depend upon. It follows a hexagonal (ports &
// adapters) design: this package declares what the core needs, while
// adapter packages (the in-memory history cache, the HTTP layer, the CLI)
// provide concrete implementations. No I/O, logging, or network concerns
// belong here.
package app

import (
	"time"

	"github.com/124-hue/APIkeygenerator/internal/domain"
)

// Clock abstracts time so issuance timestamps are deterministic in tests.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
}

// HistoryStore is the port for the bounded recent-keys record.
// Implementations own their entries exclusively; Entries must return
// copies that are safe for the caller to retain, ordered most recently
// recorded first.
type HistoryStore interface {
	Record(e domain.HistoryEntry)
	Entries() []domain.HistoryEntry
}
