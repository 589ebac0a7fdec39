package report

import (
	"context"
	"encoding/json"
	"io"

	"github.com/nao1215/ipfreq/internal/model"
	"github.com/nao1215/ipfreq/internal/resolve"
)

// JSONWriter outputs the entries as a JSON array.
// This format is designed for tool integration and programmatic
// processing.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because it's part of the standard library
// and sufficient for a flat array of small objects.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// resolver may be nil for numeric mode, in which case the host field is
// omitted from every object.
func NewJSONWriter(output io.Writer, resolver resolve.Resolver) *JSONWriter {
	return &JSONWriter{
		baseWriter: newBaseWriter(output, resolver),
	}
}

// Write resolves all entries, then emits them as one indented JSON
// array in the given order. Unlike the text format, nothing is written
// when a resolution fails, since a partial JSON document would not be
// parseable anyway.
func (w *JSONWriter) Write(ctx context.Context, entries []model.Entry) (int, error) {
	for i := range entries {
		if err := w.resolveEntry(ctx, &entries[i]); err != nil {
			return 0, err
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
