package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".ipfreq"

// xdgConfigName is the file name used inside the XDG config directory.
const xdgConfigName = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers should handle this based on whether the config file
// path was explicitly specified by the user: explicit and missing is an
// error, implicit absence is not.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the contents of the ipfreq defaults file.
// Every field supplies a default for the matching CLI flag; a flag
// given on the command line always wins over the file.
//
// Design decision: Scalar fields use pointers so an absent key can be
// distinguished from an explicit zero value (e.g. "threshold: 0" is a
// real filter, not an unset one).
type File struct {
	// Pattern is the default extraction pattern.
	Pattern string `yaml:"pattern"`

	// Format is the default output template.
	Format string `yaml:"format"`

	// Numeric sets the default for --numeric.
	Numeric *bool `yaml:"numeric"`

	// Key sets the default 1-based match index.
	Key *int `yaml:"key"`

	// Threshold sets the default occurrence threshold.
	Threshold *int64 `yaml:"threshold"`

	// MaxResults sets the default result cap.
	MaxResults *int `yaml:"max-results"`

	// FixedIPs sets the default for --fixed-ips.
	FixedIPs *bool `yaml:"fixed-ips"`

	// Pedantic sets the default for --pedantic.
	Pedantic *bool `yaml:"pedantic"`

	// Resolver sets the default DNS server for reverse lookups.
	Resolver string `yaml:"resolver"`
}

// LoadConfigFile loads flag defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .ipfreq in the current directory
// 3. Look for .ipfreq in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string
// if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), xdgConfigName)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Apply fills in any Config field the user did not set on the command
// line with the value from the file. The set map reports, by flag name,
// which flags were explicitly given.
func (f *File) Apply(cfg *Config, set map[string]bool) {
	if f == nil {
		return
	}

	if f.Pattern != "" && !set["pattern"] {
		cfg.Pattern = f.Pattern
	}
	if f.Format != "" && !set["format"] {
		cfg.Format = f.Format
	}
	if f.Numeric != nil && !set["numeric"] {
		cfg.Numeric = *f.Numeric
	}
	if f.Key != nil && !set["key"] {
		cfg.KeyIndex = *f.Key
	}
	if f.Threshold != nil && !set["threshold"] {
		cfg.Threshold = *f.Threshold
	}
	if f.MaxResults != nil && !set["max-results"] {
		cfg.MaxResults = *f.MaxResults
	}
	if f.FixedIPs != nil && !set["fixed-ips"] {
		cfg.FixedIPs = *f.FixedIPs
	}
	if f.Pedantic != nil && !set["pedantic"] {
		cfg.Pedantic = *f.Pedantic
	}
	if f.Resolver != "" && !set["resolver"] {
		cfg.Resolver = f.Resolver
	}
}
