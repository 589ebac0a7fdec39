package model

import "strings"

// mappedPrefix is the IPv4-mapped IPv6 prefix (e.g. ::ffff:192.168.1.1).
// Mapped addresses only resolve properly once the prefix is stripped, and
// because a user-supplied pattern may or may not capture the prefix, the
// table always strips it itself rather than relying on the pattern.
const mappedPrefix = "::ffff:"

// NormalizeAddress strips a single leading "::ffff:" prefix from candidate.
// A candidate without the prefix is returned unchanged. The prefix is
// removed at most once, so "::ffff:::ffff:1.2.3.4" normalizes to
// "::ffff:1.2.3.4".
func NormalizeAddress(candidate string) string {
	return strings.TrimPrefix(candidate, mappedPrefix)
}

// FrequencyTable maps normalized addresses to occurrence counts.
//
// Invariant: every key is non-empty and has had any leading "::ffff:"
// prefix stripped exactly once, regardless of which extraction mode
// produced it. The table is mutated only by the scanner and consumed
// once, in full, by the report builder. It is never persisted.
type FrequencyTable map[string]uint64

// NewFrequencyTable creates an empty frequency table.
func NewFrequencyTable() FrequencyTable {
	return make(FrequencyTable)
}

// Add normalizes candidate and increments its count, inserting the entry
// with count 1 if absent. It returns the normalized address that was
// counted. Counts aggregate additively across multiple sources writing
// into the same table.
func (t FrequencyTable) Add(candidate string) string {
	addr := NormalizeAddress(candidate)
	t[addr]++
	return addr
}

// Entries converts the table into a slice of report entries.
// The order of the returned slice is unspecified; the report builder
// is responsible for sorting.
func (t FrequencyTable) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for addr, count := range t {
		entries = append(entries, Entry{Addr: addr, Count: count})
	}
	return entries
}

// Entry is a single report row: an address, how many times it was seen,
// and (when hostname resolution is enabled) the resolved hostname.
// Entries are transient; they exist only during report rendering.
type Entry struct {
	// Addr is the normalized address string used as the table key.
	Addr string `json:"ip"`

	// Count is the number of occurrences across all scanned sources.
	Count uint64 `json:"cnt"`

	// Host is the reverse-resolved hostname. Empty when resolution is
	// disabled (numeric mode) or not yet performed.
	Host string `json:"host,omitempty"`
}
