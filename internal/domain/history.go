// Package domain history.go contains the record type for issued keys.
package domain

// HistoryEntry records the outcome of exactly one generation event: the
// hostname a key was issued for and the assembled key string. Entries are
// value types; consumers always receive copies.
type HistoryEntry struct {
	Domain string
	Token  string
}
