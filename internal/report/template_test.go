package report

import (
	"errors"
	"testing"

	"github.com/nao1215/ipfreq/internal/model"
)

// TestParseTemplate tests placeholder validation.
func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("accepts known placeholders", func(t *testing.T) {
		t.Parallel()
		for _, format := range []string{
			DefaultTemplate,
			DefaultNumericTemplate,
			"{cnt}\t{ip}\t{host}",
			"no placeholders at all",
		} {
			if _, err := ParseTemplate(format); err != nil {
				t.Errorf("ParseTemplate(%q) returned error: %v", format, err)
			}
		}
	})

	t.Run("rejects unknown placeholders", func(t *testing.T) {
		t.Parallel()
		_, err := ParseTemplate("{cnt} {address}")
		if !errors.Is(err, ErrUnknownPlaceholder) {
			t.Errorf("expected ErrUnknownPlaceholder, got %v", err)
		}
	})

	t.Run("rejects empty placeholder", func(t *testing.T) {
		t.Parallel()
		_, err := ParseTemplate("{} {ip}")
		if !errors.Is(err, ErrUnknownPlaceholder) {
			t.Errorf("expected ErrUnknownPlaceholder, got %v", err)
		}
	})
}

// TestContainsHost tests detection of the {host} placeholder.
func TestContainsHost(t *testing.T) {
	t.Parallel()

	if !ContainsHost("{cnt} {host} ({ip})") {
		t.Error("expected {host} to be detected")
	}
	if ContainsHost("{cnt} {ip}") {
		t.Error("expected no {host} in numeric template")
	}
}

// TestTemplateRender tests placeholder substitution.
func TestTemplateRender(t *testing.T) {
	t.Parallel()

	entry := model.Entry{Addr: "1.2.3.4", Count: 42, Host: "gw.example.com"}

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "default template",
			format: DefaultTemplate,
			want:   "42 gw.example.com (1.2.3.4)",
		},
		{
			name:   "numeric template",
			format: DefaultNumericTemplate,
			want:   "42 1.2.3.4",
		},
		{
			name:   "repeated placeholders",
			format: "{ip} {ip} {cnt}",
			want:   "1.2.3.4 1.2.3.4 42",
		},
		{
			name:   "literal text preserved",
			format: "count={cnt} addr={ip}",
			want:   "count=42 addr=1.2.3.4",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tmpl, err := ParseTemplate(tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := tmpl.Render(entry); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
