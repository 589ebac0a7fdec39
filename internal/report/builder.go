package report

import (
	"log/slog"
	"sort"

	"github.com/nao1215/ipfreq/internal/model"
)

// NoThreshold disables threshold filtering.
// Any negative threshold keeps every entry, since counts are at least 1.
const NoThreshold int64 = -1

// Builder orders and trims a frequency table into report entries.
// It applies, in fixed order: threshold filter, ascending sort by
// count, and top-N limit. Hostname resolution and rendering are left
// to the writers.
type Builder struct {
	// maxResults caps the output to the N entries with the highest
	// counts. Zero means unlimited.
	maxResults int

	// threshold drops entries whose count is less than or equal to it.
	// NoThreshold keeps everything.
	threshold int64

	// logger receives debug output about the pipeline steps.
	logger *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithMaxResults caps the report to the n entries with the highest
// counts. Zero disables the cap.
func WithMaxResults(n int) BuilderOption {
	return func(b *Builder) {
		b.maxResults = n
	}
}

// WithThreshold drops entries with a count less than or equal to n.
// Pass NoThreshold to keep everything.
func WithThreshold(n int64) BuilderOption {
	return func(b *Builder) {
		b.threshold = n
	}
}

// WithBuilderLogger sets the logger for debug output.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a Builder. By default no threshold is applied and
// the result count is unlimited.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		threshold: NoThreshold,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build filters, sorts, and limits the table into report entries.
//
// Entries are ordered ascending by count; ties are broken by ascending
// address string, which keeps the order deterministic across runs.
// The top-N limit keeps the entries with the highest counts by slicing
// the tail of the ascending order, preserving their relative order.
func (b *Builder) Build(table model.FrequencyTable) []model.Entry {
	entries := make([]model.Entry, 0, len(table))
	for addr, count := range table {
		if b.threshold >= 0 && count <= uint64(b.threshold) {
			continue
		}
		entries = append(entries, model.Entry{Addr: addr, Count: count})
	}
	b.logger.Debug("threshold applied", "kept", len(entries), "total", len(table))

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Addr < entries[j].Addr
		}
		return entries[i].Count < entries[j].Count
	})

	if b.maxResults > 0 && len(entries) > b.maxResults {
		entries = entries[len(entries)-b.maxResults:]
	}

	return entries
}
