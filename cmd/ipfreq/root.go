// Package main provides the entry point for the ipfreq CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/nao1215/ipfreq/internal/config"
	"github.com/nao1215/ipfreq/internal/model"
	"github.com/nao1215/ipfreq/internal/report"
	"github.com/nao1215/ipfreq/internal/resolve"
	"github.com/nao1215/ipfreq/internal/scanner"
)

// NewRootCmd creates the root command for ipfreq.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipfreq [file...]",
		Short: "Count IP address occurrences in log-like text",
		Long: `ipfreq reads log-like text from files or standard input, extracts an
IP address from each line, and prints per-address occurrence counts
sorted ascending by count.

By default each line is searched with a built-in pattern covering IPv4,
IPv4-mapped, and IPv6 address forms, and every reported address is
reverse-resolved to a hostname. Use --numeric to skip resolution and
--pattern to supply a custom extraction regex.

Examples:
  # Count addresses in a log file
  ipfreq access.log

  # Read from stdin, skip hostname resolution
  journalctl -u sshd | ipfreq --numeric

  # Top 10 noisiest addresses seen more than 5 times
  ipfreq --numeric --max-results 10 --threshold 5 access.log

  # Second address per line, custom output template
  ipfreq --key 2 --format "{ip} hit {cnt} times" access.log

  # One address per line, no pattern matching
  ipfreq --fixed-ips --numeric addresses.txt

Defaults file (.ipfreq) example:
  numeric: true
  threshold: 5
  format: "{cnt}\t{ip}"`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Extraction flags
	cmd.Flags().IntP("key", "k", config.DefaultKeyIndex,
		"If multiple IPs per line are found, use the Nth hit, starts at 1")
	cmd.Flags().StringP("pattern", "p", "",
		"Custom regex pattern to match the IP")
	cmd.Flags().Bool("fixed-ips", false,
		"Assume each line contains a single IP without anything else in it")
	cmd.Flags().Bool("pedantic", false,
		"Bail out as soon as a line without any IP is hit")

	// Report flags
	cmd.Flags().IntP("max-results", "m", config.NoMaxResults,
		"Limit the number of results to show")
	cmd.Flags().Int64P("threshold", "T", config.NoThreshold,
		"Only show IPs seen more than this many times")
	cmd.Flags().BoolP("numeric", "n", false,
		"Do not do any host lookups")
	cmd.Flags().StringP("format", "f", "",
		"Custom format per IP, may contain {host}, {ip} and {cnt}")
	cmd.Flags().StringP("resolver", "r", "",
		"DNS server to send reverse lookups to (host:port)")
	cmd.Flags().BoolP("json", "j", false,
		"Output the report as JSON (mutually exclusive with --markdown)")
	cmd.Flags().Bool("markdown", false,
		"Output the report as a Markdown table (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path instead of stdout")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .ipfreq in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes the count-and-report run.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// All configuration errors surface before any input is read.
	pattern, err := cfg.CompilePattern()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	tmpl, err := buildTemplate(cfg)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	return run(cmd, cfg, pattern, tmpl, logger)
}

// buildConfig creates a Config from cobra command flags and the
// optional defaults file. An explicitly given flag always wins over
// the file; the file wins over built-in defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.KeyIndex, err = cmd.Flags().GetInt("key")
	if err != nil {
		return nil, err
	}

	customPattern, err := cmd.Flags().GetString("pattern")
	if err != nil {
		return nil, err
	}
	if customPattern != "" {
		cfg.Pattern = customPattern
	}

	cfg.FixedIPs, err = cmd.Flags().GetBool("fixed-ips")
	if err != nil {
		return nil, err
	}

	cfg.Pedantic, err = cmd.Flags().GetBool("pedantic")
	if err != nil {
		return nil, err
	}

	cfg.MaxResults, err = cmd.Flags().GetInt("max-results")
	if err != nil {
		return nil, err
	}

	cfg.Threshold, err = cmd.Flags().GetInt64("threshold")
	if err != nil {
		return nil, err
	}

	cfg.Numeric, err = cmd.Flags().GetBool("numeric")
	if err != nil {
		return nil, err
	}

	cfg.Format, err = cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	cfg.Resolver, err = cmd.Flags().GetString("resolver")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Files = args

	// Load flag defaults from the config file.
	// If the user explicitly specified a config file path, error if it
	// is not found. If no path was specified, silently skip.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg, changedFlags(cmd))
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// changedFlags reports which flags were explicitly set on the command line.
func changedFlags(cmd *cobra.Command) map[string]bool {
	set := make(map[string]bool)
	for _, name := range []string{
		"key", "pattern", "fixed-ips", "pedantic",
		"max-results", "threshold", "numeric", "format", "resolver",
	} {
		if cmd.Flags().Changed(name) {
			set[name] = true
		}
	}
	return set
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildTemplate parses the output template, falling back to the default
// for the chosen mode when no custom format is given.
func buildTemplate(cfg *config.Config) (report.Template, error) {
	format := cfg.Format
	if format == "" {
		if cfg.Numeric {
			format = report.DefaultNumericTemplate
		} else {
			format = report.DefaultTemplate
		}
	}

	tmpl, err := report.ParseTemplate(format)
	if err != nil {
		return report.Template{}, fmt.Errorf("configuration error: %w", err)
	}
	return tmpl, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// run scans all sources into one table, then renders the report.
// Sources are scanned sequentially and fully before any output is
// produced; a scan failure discards the accumulated counts and no
// report is printed.
func run(cmd *cobra.Command, cfg *config.Config, pattern *regexp.Regexp, tmpl report.Template, logger *slog.Logger) error {
	table := model.NewFrequencyTable()

	sc := scanner.New(pattern,
		scanner.WithKeyIndex(cfg.KeyIndex),
		scanner.WithPedantic(cfg.Pedantic),
		scanner.WithFixedIPs(cfg.FixedIPs),
		scanner.WithLogger(logger),
	)

	if len(cfg.Files) == 0 {
		if err := sc.Scan(cmd.InOrStdin(), config.StdinSourceName, table); err != nil {
			return fmt.Errorf("failed processing stdin: %w", err)
		}
	} else {
		for _, path := range cfg.Files {
			if err := scanFile(sc, path, table); err != nil {
				return err
			}
		}
	}

	logger.Debug("scan finished", "addresses", len(table))

	builder := report.NewBuilder(
		report.WithMaxResults(cfg.MaxResults),
		report.WithThreshold(cfg.Threshold),
		report.WithBuilderLogger(logger),
	)
	entries := builder.Build(table)

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newReportWriter(cfg, tmpl, output)
	if _, err := writer.Write(cmd.Context(), entries); err != nil {
		return fmt.Errorf("failed printing stats: %w", err)
	}
	return nil
}

// scanFile scans a single file into the table.
// The file is opened, fully drained, and closed before the next source
// is touched.
func scanFile(sc *scanner.Scanner, path string, table model.FrequencyTable) error {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return fmt.Errorf("could not open file %s: %w", path, err)
	}

	scanErr := sc.Scan(f, path, table)
	closeErr := f.Close()

	if scanErr != nil {
		return fmt.Errorf("failed processing file %s: %w", path, scanErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed closing file %s: %w", path, closeErr)
	}
	return nil
}

// openOutput returns the report destination and a cleanup function.
// With --output the report goes to a file created with secure
// permissions; otherwise it goes to the command's stdout.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newReportWriter selects the report format requested by the configuration.
func newReportWriter(cfg *config.Config, tmpl report.Template, output io.Writer) report.Writer {
	resolver := newResolver(cfg)

	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, resolver)
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output, resolver)
	default:
		return report.NewTextWriter(output, tmpl, resolver)
	}
}

// newResolver selects the reverse-DNS resolver, or nil in numeric mode.
func newResolver(cfg *config.Config) resolve.Resolver {
	if cfg.Numeric {
		return nil
	}
	if cfg.Resolver != "" {
		return resolve.NewServerResolver(cfg.Resolver)
	}
	return resolve.NewSystemResolver()
}
