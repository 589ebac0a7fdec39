package report

import (
	"reflect"
	"testing"

	"github.com/nao1215/ipfreq/internal/model"
)

// addrs extracts the address column for order assertions.
func addrs(entries []model.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Addr)
	}
	return out
}

// TestBuilderBuild tests the filter/sort/limit pipeline.
func TestBuilderBuild(t *testing.T) {
	t.Parallel()

	table := model.FrequencyTable{
		"1.2.3.4":  5,
		"5.6.7.8":  1,
		"10.0.0.1": 3,
		"10.0.0.2": 3,
		"10.0.0.3": 8,
	}

	t.Run("sorts ascending by count with address tie-break", func(t *testing.T) {
		t.Parallel()
		entries := NewBuilder().Build(table)

		want := []string{"5.6.7.8", "10.0.0.1", "10.0.0.2", "1.2.3.4", "10.0.0.3"}
		if got := addrs(entries); !reflect.DeepEqual(got, want) {
			t.Errorf("unexpected order: got %v, want %v", got, want)
		}
	})

	t.Run("threshold drops counts less than or equal to it", func(t *testing.T) {
		t.Parallel()
		entries := NewBuilder(WithThreshold(3)).Build(table)

		want := []string{"1.2.3.4", "10.0.0.3"}
		if got := addrs(entries); !reflect.DeepEqual(got, want) {
			t.Errorf("unexpected entries: got %v, want %v", got, want)
		}
	})

	t.Run("threshold zero keeps everything", func(t *testing.T) {
		t.Parallel()
		entries := NewBuilder(WithThreshold(0)).Build(table)
		if len(entries) != len(table) {
			t.Errorf("expected all %d entries, got %d", len(table), len(entries))
		}
	})

	t.Run("limit keeps the highest counts in ascending order", func(t *testing.T) {
		t.Parallel()
		entries := NewBuilder(WithMaxResults(2)).Build(table)

		want := []string{"1.2.3.4", "10.0.0.3"}
		if got := addrs(entries); !reflect.DeepEqual(got, want) {
			t.Errorf("unexpected entries: got %v, want %v", got, want)
		}
	})

	t.Run("limit larger than table keeps everything", func(t *testing.T) {
		t.Parallel()
		entries := NewBuilder(WithMaxResults(100)).Build(table)
		if len(entries) != len(table) {
			t.Errorf("expected all %d entries, got %d", len(table), len(entries))
		}
	})

	t.Run("threshold applies before limit", func(t *testing.T) {
		t.Parallel()
		entries := NewBuilder(WithThreshold(1), WithMaxResults(3)).Build(table)

		// 5.6.7.8 (count 1) is dropped by the threshold, so the limit
		// selects from the four remaining entries.
		want := []string{"10.0.0.2", "1.2.3.4", "10.0.0.3"}
		if got := addrs(entries); !reflect.DeepEqual(got, want) {
			t.Errorf("unexpected entries: got %v, want %v", got, want)
		}
	})

	t.Run("empty table yields no entries", func(t *testing.T) {
		t.Parallel()
		entries := NewBuilder().Build(model.NewFrequencyTable())
		if len(entries) != 0 {
			t.Errorf("expected no entries, got %v", entries)
		}
	})
}
