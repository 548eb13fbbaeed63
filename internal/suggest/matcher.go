// Package suggest proposes dictionary words close to a misspelled input.
package suggest

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hbollon/go-edlib"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/sandhi/internal/ir"
)

// DefaultThreshold is the score a candidate must exceed to be suggested.
const DefaultThreshold = 70

// Matcher scores vocabulary words by edit-distance similarity.
// It is safe for concurrent use.
type Matcher struct {
	vocab     mapset.Set[string]
	algorithm edlib.Algorithm
	threshold int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold sets the minimum score (exclusive, 0-100).
func WithThreshold(score int) Option {
	return func(m *Matcher) {
		m.threshold = score
	}
}

// WithAlgorithm selects the edlib similarity algorithm.
func WithAlgorithm(algo edlib.Algorithm) Option {
	return func(m *Matcher) {
		m.algorithm = algo
	}
}

// NewMatcher creates a Matcher over words. Duplicates are ignored.
func NewMatcher(words []string, opts ...Option) *Matcher {
	m := &Matcher{
		vocab:     mapset.NewSet[string](),
		algorithm: edlib.Levenshtein,
		threshold: DefaultThreshold,
	}
	for _, w := range words {
		if w != "" {
			m.vocab.Add(norm.NFC.String(w))
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Len returns the vocabulary size.
func (m *Matcher) Len() int {
	return m.vocab.Cardinality()
}

// Contains reports whether word is in the vocabulary.
func (m *Matcher) Contains(word string) bool {
	return m.vocab.Contains(norm.NFC.String(word))
}

// Suggest returns up to limit vocabulary words scoring above the threshold,
// best first. Ties are broken alphabetically so results are stable.
func (m *Matcher) Suggest(input string, limit int) []ir.Suggestion {
	if input == "" || limit <= 0 {
		return nil
	}
	input = norm.NFC.String(input)

	var out []ir.Suggestion
	for _, w := range m.vocab.ToSlice() {
		sim, err := edlib.StringsSimilarity(input, w, m.algorithm)
		if err != nil {
			continue
		}
		score := int(math.Round(float64(sim) * 100))
		if score > m.threshold {
			out = append(out, ir.Suggestion{Word: w, Score: score})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
