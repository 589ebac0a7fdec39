package scanner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/nao1215/ipfreq/internal/model"
)

// Scanner extracts one candidate address per input line and accumulates
// counts into a frequency table. The compiled pattern is immutable after
// construction and shared read-only across all Scan calls.
type Scanner struct {
	// pattern is the compiled extraction pattern. Unused in fixed mode.
	pattern *regexp.Regexp

	// keyIndex selects which match per line to use, 1-based.
	// A value below 1 is a configuration error caught before the
	// scanner is built; Scan assumes keyIndex >= 1.
	keyIndex int

	// pedantic makes a line without an extractable address fatal.
	pedantic bool

	// fixedIPs treats the whole trimmed line as the candidate,
	// bypassing pattern matching.
	fixedIPs bool

	// logger receives per-source debug output.
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithKeyIndex sets the 1-based index of which match per line to use.
func WithKeyIndex(n int) Option {
	return func(s *Scanner) {
		s.keyIndex = n
	}
}

// WithPedantic makes the scanner abort on any line without an
// extractable address. Only meaningful in pattern mode.
func WithPedantic(pedantic bool) Option {
	return func(s *Scanner) {
		s.pedantic = pedantic
	}
}

// WithFixedIPs makes the scanner treat each whole trimmed line as the
// candidate address instead of running the pattern.
func WithFixedIPs(fixed bool) Option {
	return func(s *Scanner) {
		s.fixedIPs = fixed
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner with the given extraction pattern.
// By default the first match per line is used, unmatched lines are
// skipped silently, and pattern mode is active.
func New(pattern *regexp.Regexp, opts ...Option) *Scanner {
	s := &Scanner{
		pattern:  pattern,
		keyIndex: 1,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan reads r line by line and accumulates counts into table.
// The name identifies the source in error messages and debug output.
//
// Lines are delimited by newline; a trailing line without a terminator
// is still processed. The reader is drained with bufio.Reader rather
// than bufio.Scanner so no line length limit is imposed beyond what the
// underlying stream supports.
//
// On a read error, or on an unmatched line in pedantic mode, Scan
// returns immediately; counts already added to table are left in place
// and the caller decides whether to discard them.
func (s *Scanner) Scan(r io.Reader, name string, table model.FrequencyTable) error {
	reader := bufio.NewReader(r)
	lineNum := 0

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("%s: failed to read line %d: %w", name, lineNum+1, readErr)
		}
		if line == "" && readErr == io.EOF {
			s.logger.Debug("source scanned", "source", name, "lines", lineNum)
			return nil
		}
		lineNum++

		if candidate, ok := s.extract(line); ok {
			table.Add(candidate)
		} else if s.pedantic && !s.fixedIPs {
			return fmt.Errorf("%s:%d: could not extract IP from line: %q",
				name, lineNum, strings.TrimRight(line, "\n"))
		}

		if readErr == io.EOF {
			s.logger.Debug("source scanned", "source", name, "lines", lineNum)
			return nil
		}
	}
}

// extract selects the candidate substring of line, or reports that the
// line contains none.
//
// In fixed mode the candidate is the whitespace-trimmed line; a line
// that trims to nothing yields no candidate, which keeps empty keys out
// of the table. In pattern mode the candidate is match number keyIndex
// (1-based) of the non-overlapping left-to-right matches.
func (s *Scanner) extract(line string) (string, bool) {
	if s.fixedIPs {
		candidate := strings.TrimSpace(line)
		return candidate, candidate != ""
	}

	matches := s.pattern.FindAllString(line, s.keyIndex)
	if len(matches) < s.keyIndex {
		return "", false
	}
	return matches[s.keyIndex-1], true
}
