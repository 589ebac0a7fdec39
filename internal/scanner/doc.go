// Package scanner reads log-like text line by line and accumulates
// address occurrence counts into a model.FrequencyTable.
//
// The scanner is single-pass: each line is read, a candidate address is
// extracted (by pattern match or, in fixed mode, by trimming the whole
// line), normalized, and counted. It never looks ahead or buffers more
// than the current line. Multiple sources are scanned sequentially into
// the same shared table so counts aggregate across sources.
package scanner
