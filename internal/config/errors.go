package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidKeyIndex is returned when the match index is below 1.
	// Match selection is 1-based; index 0 is a configuration error,
	// not a scan error.
	ErrInvalidKeyIndex = errors.New("invalid key index: must be at least 1")

	// ErrInvalidMaxResults is returned when the result cap is negative.
	// Use 0 to disable the cap.
	ErrInvalidMaxResults = errors.New("invalid max results: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at
	// a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrFormatWithStructuredReport is returned when a custom format
	// template is combined with --json or --markdown, which render
	// their own structure.
	ErrFormatWithStructuredReport = errors.New("--format cannot be used with --json or --markdown")

	// ErrHostWithNumeric is returned when the format template uses
	// {host} while --numeric suppresses hostname resolution.
	ErrHostWithNumeric = errors.New("cannot use {host} in the format string and pass --numeric at the same time")

	// ErrResolverWithNumeric is returned when a custom DNS server is
	// given while --numeric suppresses hostname resolution.
	ErrResolverWithNumeric = errors.New("--resolver has no effect with --numeric")
)
