package model

import (
	"sort"
	"testing"
)

// TestNormalizeAddress verifies the ::ffff: prefix stripping rule.
func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{
			name:      "plain IPv4 is unchanged",
			candidate: "192.168.1.1",
			want:      "192.168.1.1",
		},
		{
			name:      "IPv4-mapped prefix is stripped",
			candidate: "::ffff:192.168.1.1",
			want:      "192.168.1.1",
		},
		{
			name:      "prefix is stripped exactly once",
			candidate: "::ffff:::ffff:10.0.0.1",
			want:      "::ffff:10.0.0.1",
		},
		{
			name:      "plain IPv6 is unchanged",
			candidate: "2001:db8::1",
			want:      "2001:db8::1",
		},
		{
			name:      "zone suffix is preserved",
			candidate: "fe80::1%eth0",
			want:      "fe80::1%eth0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeAddress(tt.candidate); got != tt.want {
				t.Errorf("NormalizeAddress(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}

// TestFrequencyTableAdd verifies count aggregation and normalization on insert.
func TestFrequencyTableAdd(t *testing.T) {
	t.Parallel()

	t.Run("inserts with count 1 and increments on repeat", func(t *testing.T) {
		t.Parallel()
		table := NewFrequencyTable()

		table.Add("1.2.3.4")
		table.Add("1.2.3.4")
		table.Add("5.6.7.8")

		if table["1.2.3.4"] != 2 {
			t.Errorf("expected count 2 for 1.2.3.4, got %d", table["1.2.3.4"])
		}
		if table["5.6.7.8"] != 1 {
			t.Errorf("expected count 1 for 5.6.7.8, got %d", table["5.6.7.8"])
		}
	})

	t.Run("mapped and plain forms share one key", func(t *testing.T) {
		t.Parallel()
		table := NewFrequencyTable()

		table.Add("::ffff:10.0.0.1")
		table.Add("10.0.0.1")

		if len(table) != 1 {
			t.Fatalf("expected 1 key, got %d", len(table))
		}
		if table["10.0.0.1"] != 2 {
			t.Errorf("expected count 2 for 10.0.0.1, got %d", table["10.0.0.1"])
		}
	})

	t.Run("returns the normalized address", func(t *testing.T) {
		t.Parallel()
		table := NewFrequencyTable()

		if got := table.Add("::ffff:10.0.0.1"); got != "10.0.0.1" {
			t.Errorf("expected normalized address 10.0.0.1, got %q", got)
		}
	})
}

// TestFrequencyTableEntries verifies the table-to-slice conversion.
func TestFrequencyTableEntries(t *testing.T) {
	t.Parallel()

	table := FrequencyTable{
		"1.2.3.4": 2,
		"5.6.7.8": 1,
	}

	entries := table.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Addr < entries[j].Addr })
	if entries[0].Addr != "1.2.3.4" || entries[0].Count != 2 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Addr != "5.6.7.8" || entries[1].Count != 1 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}
