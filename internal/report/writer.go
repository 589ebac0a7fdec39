package report

import (
	"context"
	"fmt"
	"io"
	"net/netip"

	"github.com/nao1215/ipfreq/internal/model"
	"github.com/nao1215/ipfreq/internal/resolve"
)

// Writer defines the interface for report output.
// Implementations render the ordered entries in various formats.
//
// Design decision: We use an interface so the text, JSON, and markdown
// formats can be used interchangeably by the command layer, writing to
// stdout or a file with the same API.
type Writer interface {
	// Write outputs the entries to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(ctx context.Context, entries []model.Entry) (int, error)
}

// baseWriter provides common functionality for report writers:
// the output destination and per-entry hostname resolution.
type baseWriter struct {
	output io.Writer

	// resolver performs reverse lookups. A nil resolver means numeric
	// mode: entries are emitted without hostnames.
	resolver resolve.Resolver
}

// newBaseWriter creates a baseWriter with the given destination and
// resolver. resolver may be nil to disable resolution.
func newBaseWriter(output io.Writer, resolver resolve.Resolver) baseWriter {
	return baseWriter{output: output, resolver: resolver}
}

// resolveEntry fills in the entry's hostname via the resolver.
// The address must parse as a structured IP; a parse or lookup failure
// is a hard error that aborts the whole render.
func (w baseWriter) resolveEntry(ctx context.Context, e *model.Entry) error {
	if w.resolver == nil {
		return nil
	}

	addr, err := netip.ParseAddr(e.Addr)
	if err != nil {
		return fmt.Errorf("could not parse IP %q: %w", e.Addr, err)
	}

	host, err := w.resolver.LookupAddr(ctx, addr)
	if err != nil {
		return fmt.Errorf("could not look up host for IP %s: %w", e.Addr, err)
	}
	e.Host = host
	return nil
}

// TextWriter outputs one templated line per entry.
// This is the default, terminal-oriented format.
//
// Entries are resolved and written one at a time, so a resolution
// failure partway through leaves the lines already written on the
// output. They are not retracted.
type TextWriter struct {
	baseWriter

	template Template
}

// NewTextWriter creates a TextWriter rendering through template.
// resolver may be nil for numeric mode.
func NewTextWriter(output io.Writer, template Template, resolver resolve.Resolver) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output, resolver),
		template:   template,
	}
}

// Write renders each entry through the template and writes it as one
// line, in the given order.
func (w *TextWriter) Write(ctx context.Context, entries []model.Entry) (int, error) {
	var total int
	for _, e := range entries {
		if err := w.resolveEntry(ctx, &e); err != nil {
			return total, err
		}

		n, err := fmt.Fprintln(w.output, w.template.Render(e))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
