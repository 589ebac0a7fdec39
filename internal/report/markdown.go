package report

import (
	"context"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/ipfreq/internal/model"
	"github.com/nao1215/ipfreq/internal/resolve"
)

// MarkdownWriter outputs the entries as a GitHub Flavored Markdown
// table. This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent,
// type-safe markdown generation instead of string concatenation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer. resolver may be nil for numeric mode, in which case the Host
// column is omitted.
func NewMarkdownWriter(output io.Writer, resolver resolve.Resolver) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output, resolver),
	}
}

// Write resolves all entries, then emits a single table in the given
// order. Nothing is written when a resolution fails.
func (w *MarkdownWriter) Write(ctx context.Context, entries []model.Entry) (int, error) {
	for i := range entries {
		if err := w.resolveEntry(ctx, &entries[i]); err != nil {
			return 0, err
		}
	}

	md := markdown.NewMarkdown(w.output)
	md.H1("IP Frequency Report")
	md.PlainText("")

	withHost := w.resolver != nil

	header := []string{"Count", "IP"}
	if withHost {
		header = append(header, "Host")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{strconv.FormatUint(e.Count, 10), "`" + e.Addr + "`"}
		if withHost {
			row = append(row, e.Host)
		}
		rows = append(rows, row)
	}

	md.Table(markdown.TableSet{
		Header: header,
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}
