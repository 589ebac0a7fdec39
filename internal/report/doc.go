// Package report turns a completed frequency table into output.
//
// The pipeline has a fixed order: threshold filter, ascending sort by
// count, top-N limit, then per-entry hostname resolution and rendering.
// The Builder handles the first three steps; the writers handle the
// last two.
//
// This package contains writers for different output formats:
//   - TextWriter: One templated line per entry for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown table
//
// Design decision: Resolution lives in the writers rather than the
// Builder because the text format resolves and prints entry by entry.
// A lookup failure midway leaves the already-printed lines on the
// output, which matches the fail-mid-output contract; resolving
// everything up front would silently change that behavior.
package report
