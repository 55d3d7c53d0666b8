// Package fuzzy suggests the closest declared flag name for a mistyped one.
// Used by the argxs parser when flag suggestions are enabled.
package fuzzy

import (
	"math"
	"sort"
	"strings"

	"github.com/dzonerzy/go-argxs/internal/pool"
)

// Levenshtein scratch rows, shared by every matcher
var rows = pool.NewIntSlicePool(64, 1024)

// Matcher ranks candidates by edit distance and a similarity score
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher that ignores candidates farther than maxDistance edits
func NewMatcher(maxDistance int) *Matcher {
	// distance reports maxDistance+1 when it gives up, which must not overflow
	maxDistance = min(max(maxDistance, 0), math.MaxInt-1)
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single letters are too ambiguous to suggest for
	}
}

// Match is one ranked candidate
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best candidate, or "" when nothing is close enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, best first.
// Exact (case-insensitive) matches are skipped: they are not typos.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	input = strings.ToLower(input)
	// distance works on the shorter string, so rows never outgrow the input
	row := rows.Get(2 * (len(input) + 1))
	defer rows.Put(row)

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}

		distance := m.distance(input, lower, *row)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.score(input, lower, distance),
		})
	}

	// stable so ties keep declaration order
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// score favours small edit distance, a shared prefix and similar length
func (m *Matcher) score(input, candidate string, distance int) float64 {
	longest := max(len(input), len(candidate))
	if longest == 0 {
		return 1.0
	}

	score := 1.0 - float64(distance)/float64(longest)

	if prefix := commonPrefix(input, candidate); prefix > 0 {
		score += float64(prefix) / float64(min(len(input), len(candidate))) * 0.3
	}

	diff := len(input) - len(candidate)
	if diff < 0 {
		diff = -diff
	}
	score += (1.0 - float64(diff)/float64(longest)) * 0.2

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// distance is a two-row Levenshtein that gives up once every cell in a row
// exceeds maxDistance. row is scratch space reused across candidates.
func (m *Matcher) distance(a, b string, row []int) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if cap(row) < 2*(len(a)+1) {
		row = make([]int, 2*(len(a)+1))
	}
	prev := row[:len(a)+1]
	curr := row[len(a)+1 : 2*(len(a)+1)]

	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}

			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// FindBestFlag finds the closest flag name within maxDistance edits
func FindBestFlag(input string, flags []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, flags)
}
