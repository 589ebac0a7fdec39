package config

import (
	"errors"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all
// expected default values. This serves as living documentation of the
// defaults; changes to them are intentional when these tests change.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default key index is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.KeyIndex != 1 {
			t.Errorf("expected KeyIndex to be 1, got %d", cfg.KeyIndex)
		}
	})

	t.Run("threshold filtering is disabled", func(t *testing.T) {
		t.Parallel()
		if cfg.Threshold != NoThreshold {
			t.Errorf("expected Threshold to be NoThreshold, got %d", cfg.Threshold)
		}
	})

	t.Run("result cap is disabled", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxResults != NoMaxResults {
			t.Errorf("expected MaxResults to be NoMaxResults, got %d", cfg.MaxResults)
		}
	})

	t.Run("pattern is the built-in default", func(t *testing.T) {
		t.Parallel()
		if cfg.Pattern != DefaultPattern {
			t.Error("expected Pattern to be DefaultPattern")
		}
	})

	t.Run("resolution is enabled by default", func(t *testing.T) {
		t.Parallel()
		if cfg.Numeric {
			t.Error("expected Numeric to be false")
		}
	})
}

// TestConfigValidate tests the Validate method with various
// configurations. Each case tests one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			modify:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "key index zero",
			modify:  func(c *Config) { c.KeyIndex = 0 },
			wantErr: ErrInvalidKeyIndex,
		},
		{
			name:    "negative key index",
			modify:  func(c *Config) { c.KeyIndex = -3 },
			wantErr: ErrInvalidKeyIndex,
		},
		{
			name:    "negative max results",
			modify:  func(c *Config) { c.MaxResults = -1 },
			wantErr: ErrInvalidMaxResults,
		},
		{
			name: "json and markdown together",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name: "custom format with json",
			modify: func(c *Config) {
				c.Format = "{cnt} {ip}"
				c.JSONReport = true
			},
			wantErr: ErrFormatWithStructuredReport,
		},
		{
			name: "host placeholder with numeric",
			modify: func(c *Config) {
				c.Numeric = true
				c.Format = "{cnt} {host}"
			},
			wantErr: ErrHostWithNumeric,
		},
		{
			name: "resolver with numeric",
			modify: func(c *Config) {
				c.Numeric = true
				c.Resolver = "10.0.0.53"
			},
			wantErr: ErrResolverWithNumeric,
		},
		{
			name: "host placeholder without numeric is fine",
			modify: func(c *Config) {
				c.Format = "{cnt} {host}"
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestCompilePattern tests pattern compilation and failure reporting.
func TestCompilePattern(t *testing.T) {
	t.Parallel()

	t.Run("default pattern compiles", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		if _, err := cfg.CompilePattern(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid pattern is a configuration error", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Pattern = "([unclosed"
		if _, err := cfg.CompilePattern(); err == nil {
			t.Fatal("expected compile error")
		}
	})
}

// TestDefaultPatternMatches exercises the built-in pattern against the
// address forms it must recognize.
func TestDefaultPatternMatches(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	pattern, err := cfg.CompilePattern()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "plain IPv4 address",
			line: "1.2.3.4 connected",
			want: "1.2.3.4",
		},
		{
			name: "IPv4-mapped address",
			line: "conn from ::ffff:192.168.1.1 accepted",
			want: "::ffff:192.168.1.1",
		},
		{
			name: "full IPv6 address",
			line: "peer 2001:0db8:0000:0000:0000:0000:0000:0001 up",
			want: "2001:0db8:0000:0000:0000:0000:0000:0001",
		},
		{
			name: "compressed IPv6 address",
			line: "peer 2001:db8::1 up",
			want: "2001:db8::1",
		},
		{
			// The zone branch is greedy, so the zone must sit at the
			// end of the line for an exact match.
			name: "IPv6 with zone suffix",
			line: "neighbor solicit from fe80::1%eth0",
			want: "fe80::1%eth0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := pattern.FindString(tt.line)
			if got != tt.want {
				t.Errorf("FindString(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
