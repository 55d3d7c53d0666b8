//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import (
	"math"
	"testing"
)

func TestMatcher_FindBest(t *testing.T) {
	matcher := NewMatcher(2)
	flags := []string{"document", "depth", "help"}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "transposed letters", input: "documnet", expected: "document"},
		{name: "swapped pair", input: "hlep", expected: "help"},
		{name: "missing letter", input: "dept", expected: "depth"},
		{name: "case insensitive", input: "DEPT", expected: "depth"},
		{name: "exact match excluded", input: "help", expected: ""},
		{name: "too short", input: "h", expected: ""},
		{name: "nothing close", input: "verbose", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.FindBest(tt.input, flags); got != tt.expected {
				t.Errorf("FindBest(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMatcher_TiesKeepDeclarationOrder(t *testing.T) {
	got := FindBestFlag("dept", []string{"depth", "deptx"}, 2)
	if got != "depth" {
		t.Fatalf("expected first declared candidate on a tie, got %q", got)
	}
}

func TestMatcher_FindMatchesSorted(t *testing.T) {
	matches := NewMatcher(2).FindMatches("hep", []string{"help", "heap", "deep", "version"})
	if len(matches) < 2 {
		t.Fatalf("expected at least 2 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Errorf("matches not sorted by score: %f < %f", matches[i-1].Score, matches[i].Score)
		}
	}
}

func TestMatcher_Distance(t *testing.T) {
	tests := []struct {
		a, b     string
		max      int
		expected int
	}{
		{"kitten", "sitting", 3, 3},
		{"flag", "flag", 2, 0},
		{"", "abc", 5, 3},
		{"abc", "", 5, 3},
		{"abcdef", "uvwxyz", 2, 3}, // gives up at max+1
		{"a", "abcdef", 2, 3},      // length gap alone exceeds max
	}

	for _, tt := range tests {
		m := NewMatcher(tt.max)
		if got := m.distance(tt.a, tt.b, nil); got != tt.expected {
			t.Errorf("distance(%q, %q) with max %d = %d, want %d", tt.a, tt.b, tt.max, got, tt.expected)
		}
	}
}

func TestNewMatcher_NegativeDistance(t *testing.T) {
	if got := NewMatcher(-4).FindBest("hlep", []string{"help"}); got != "" {
		t.Fatalf("expected no suggestions with zero distance, got %q", got)
	}
}

func TestMatcher_HugeMaxDistance(t *testing.T) {
	flags := []string{"document", "depth", "help"}

	for _, maxDistance := range []int{1 << 26, math.MaxInt / 2, math.MaxInt} {
		got := NewMatcher(maxDistance).FindBest("documnet", flags)
		if got != "document" {
			t.Errorf("FindBest with max %d = %q, want %q", maxDistance, got, "document")
		}
	}

	allocs := testing.AllocsPerRun(100, func() {
		NewMatcher(1<<26).FindMatches("documnet", flags)
	})
	// a row sized by maxDistance would be hundreds of megabytes; just make sure
	// the call stays cheap enough to run repeatedly
	if allocs > 16 {
		t.Errorf("too many allocations with a huge max distance: %.0f", allocs)
	}
}

func BenchmarkFindBestFlag(b *testing.B) {
	flags := []string{"document", "depth", "help", "verbose", "output", "config"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FindBestFlag("documnet", flags, 2)
	}
}
