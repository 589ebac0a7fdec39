package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultKeyIndex selects the first match per line.
	DefaultKeyIndex = 1

	// NoThreshold disables threshold filtering. Any negative value
	// keeps every entry, since counts are always at least 1.
	NoThreshold int64 = -1

	// NoMaxResults disables the result cap.
	NoMaxResults = 0

	// AppName is the application name used for XDG directory paths.
	AppName = "ipfreq"

	// StdinSourceName identifies standard input in error messages and
	// debug output when no file arguments are given.
	StdinSourceName = "stdin"
)

// DefaultPattern matches plain and IPv4-mapped IPv4 addresses and
// general IPv6 forms, including zone suffixes.
//
// The pattern is deliberately permissive: extraction is regex-only and
// the one normalization rule (stripping a leading "::ffff:") is applied
// after matching, so the pattern does not need to exclude the prefix
// itself.
const DefaultPattern = `((::ffff:)?(?:[0-9]{1,3}\.){3}[0-9]{1,3})|((([0-9a-f]{1,4}:){7}([0-9a-f]{1,4}|:))|(([0-9a-f]{1,4}:){6}(:[0-9a-f]{1,4}|((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])){3})|:))|(([0-9a-f]{1,4}:){5}(((:[0-9a-f]{1,4}){1,2})|:((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])){3})|:))|(([0-9a-f]{1,4}:){4}(((:[0-9a-f]{1,4}){1,3})|((:[0-9a-f]{1,4})?:((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])){3}))|:))|(([0-9a-f]{1,4}:){3}(((:[0-9a-f]{1,4}){1,4})|((:[0-9a-f]{1,4}){0,2}:((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])){3}))|:))|(([0-9a-f]{1,4}:){2}(((:[0-9a-f]{1,4}){1,5})|((:[0-9a-f]{1,4}){0,3}:((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])){3}))|:))|(([0-9a-f]{1,4}:){1}(((:[0-9a-f]{1,4}){1,6})|((:[0-9a-f]{1,4}){0,4}:((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])){3}))|:))|(:(((:[0-9a-f]{1,4}){1,7})|((:[0-9a-f]{1,4}){0,5}:((25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])){3}))|:)))(%.+)?`

// Config holds all configuration options for ipfreq.
// This struct is populated once from CLI flags and the optional config
// file, validated, and then passed through the application by value
// semantics rather than global state. It is never mutated after
// validation.
//
// Design decision: We use a single flat struct instead of nested
// structs. The number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// Files are the input paths. When empty, standard input is read.
	Files []string

	// MaxResults caps the report to the N entries with the highest
	// counts. NoMaxResults (zero) disables the cap.
	MaxResults int

	// Numeric suppresses hostname resolution entirely.
	Numeric bool

	// KeyIndex is the 1-based index of which match per line to use in
	// pattern mode. Must be at least 1.
	KeyIndex int

	// Threshold drops entries with a count less than or equal to it.
	// NoThreshold disables the filter.
	Threshold int64

	// Pedantic aborts the run on any line without an extractable
	// address. Only meaningful in pattern mode.
	Pedantic bool

	// Pattern is the extraction regular expression source text.
	// Compiled once via CompilePattern before scanning begins.
	Pattern string

	// FixedIPs treats each whole trimmed line as the address,
	// bypassing pattern matching.
	FixedIPs bool

	// Format is the custom output template. Empty means the default
	// template for the chosen mode is used. Recognized placeholders
	// are {cnt}, {ip}, and {host}.
	Format string

	// Resolver is an optional DNS server ("host:port" or bare host)
	// to send reverse lookups to instead of the system resolver.
	Resolver string

	// JSONReport emits the report as a JSON array instead of
	// templated lines. Mutually exclusive with MarkdownReport and
	// with a custom Format.
	JSONReport bool

	// MarkdownReport emits the report as a markdown table instead of
	// templated lines. Mutually exclusive with JSONReport and with a
	// custom Format.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string

	// ConfigFilePath is the path to the defaults file. If empty, the
	// tool searches for .ipfreq in the current directory, the home
	// directory, and the XDG config directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		KeyIndex:   DefaultKeyIndex,
		Threshold:  NoThreshold,
		MaxResults: NoMaxResults,
		Pattern:    DefaultPattern,
	}
}

// XDGConfigDir returns the XDG config directory for ipfreq.
// On Linux: ~/.config/ipfreq
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// This is called once after CLI parsing, before any scanning begins,
// so every configuration error is reported before input is touched.
// We return the first error found; fixing one error often makes others
// irrelevant.
func (c *Config) Validate() error {
	if c.KeyIndex < 1 {
		return ErrInvalidKeyIndex
	}

	if c.MaxResults < 0 {
		return ErrInvalidMaxResults
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.Format != "" && (c.JSONReport || c.MarkdownReport) {
		return ErrFormatWithStructuredReport
	}

	if c.Numeric && strings.Contains(c.Format, "{host}") {
		return ErrHostWithNumeric
	}

	if c.Numeric && c.Resolver != "" {
		return ErrResolverWithNumeric
	}

	return nil
}

// CompilePattern compiles the extraction pattern.
// A pattern that does not compile is a configuration error.
func (c *Config) CompilePattern() (*regexp.Regexp, error) {
	pattern, err := regexp.Compile(c.Pattern)
	if err != nil {
		return nil, fmt.Errorf("could not compile pattern: %w", err)
	}
	return pattern, nil
}
