package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/sandhi/internal/ir"
)

// Snapshot is the immutable, validated rule store.
// All methods are safe for concurrent use.
type Snapshot struct {
	tables      ir.Tables
	words       map[string]ir.RootWord
	markers     map[string]ir.VibhaktiMarker
	hints       map[string][]ir.Hint
	vocabulary  []string
	fingerprint string
}

func newSnapshot(t ir.Tables) (*Snapshot, error) {
	fp, err := ir.Fingerprint(t)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: "fingerprint tables", Err: err}
	}

	s := &Snapshot{
		tables:      t,
		words:       make(map[string]ir.RootWord, len(t.RootWords)),
		markers:     make(map[string]ir.VibhaktiMarker, len(t.Markers)),
		hints:       make(map[string][]ir.Hint),
		vocabulary:  make([]string, 0, len(t.RootWords)),
		fingerprint: fp,
	}
	for _, w := range t.RootWords {
		s.words[w.Text] = w
		s.vocabulary = append(s.vocabulary, w.Text)
	}
	for _, m := range t.Markers {
		s.markers[m.Marker] = m
	}
	for _, c := range t.Compounds {
		s.hints[c.Word1] = append(s.hints[c.Word1], ir.Hint{NextWord: c.Word2, Result: c.Combined})
	}
	return s, nil
}

// RootWord returns the dictionary entry for text.
func (s *Snapshot) RootWord(text string) (ir.RootWord, bool) {
	w, ok := s.words[text]
	return w, ok
}

// IsKnownWord reports whether text is a root word.
func (s *Snapshot) IsKnownWord(text string) bool {
	_, ok := s.words[text]
	return ok
}

// KnownEndingSound returns the curated ending sound of a root word.
func (s *Snapshot) KnownEndingSound(word string) (string, bool) {
	w, ok := s.words[word]
	if !ok || !w.HasEndingSound() {
		return "", false
	}
	return w.EndingSound, true
}

// SandhiRules returns the sandhi rules in table order.
func (s *Snapshot) SandhiRules() []ir.SandhiRule {
	return slices.Clone(s.tables.SandhiRules)
}

// SamasaRules returns the samasa rules in table order.
func (s *Snapshot) SamasaRules() []ir.SamasaRule {
	return slices.Clone(s.tables.SamasaRules)
}

// EachSandhiRule calls fn for every sandhi rule in table order until fn
// returns false. It does not copy the table.
func (s *Snapshot) EachSandhiRule(fn func(ir.SandhiRule) bool) {
	for _, r := range s.tables.SandhiRules {
		if !fn(r) {
			return
		}
	}
}

// EachSamasaRule calls fn for every samasa rule in table order until fn
// returns false.
func (s *Snapshot) EachSamasaRule(fn func(ir.SamasaRule) bool) {
	for _, r := range s.tables.SamasaRules {
		if !fn(r) {
			return
		}
	}
}

// Marker returns the vibhakti marker keyed by text.
func (s *Snapshot) Marker(text string) (ir.VibhaktiMarker, bool) {
	m, ok := s.markers[text]
	return m, ok
}

// IsMarker reports whether text is a vibhakti marker.
func (s *Snapshot) IsMarker(text string) bool {
	_, ok := s.markers[text]
	return ok
}

// Hints returns the known compounds starting with word1, in table order.
func (s *Snapshot) Hints(word1 string) []ir.Hint {
	return slices.Clone(s.hints[word1])
}

// Vocabulary returns every root word in table order.
func (s *Snapshot) Vocabulary() []string {
	return slices.Clone(s.vocabulary)
}

// Tables returns a deep copy of the underlying tables.
func (s *Snapshot) Tables() ir.Tables {
	return ir.Tables{
		RootWords:   slices.Clone(s.tables.RootWords),
		SandhiRules: slices.Clone(s.tables.SandhiRules),
		Markers:     slices.Clone(s.tables.Markers),
		SamasaRules: slices.Clone(s.tables.SamasaRules),
		Compounds:   slices.Clone(s.tables.Compounds),
	}
}

// Fingerprint returns the content hash of the tables.
func (s *Snapshot) Fingerprint() string {
	return s.fingerprint
}

// Stats returns the table sizes.
func (s *Snapshot) Stats() ir.Stats {
	return ir.Stats{
		RootWords:   len(s.tables.RootWords),
		SandhiRules: len(s.tables.SandhiRules),
		SamasaRules: len(s.tables.SamasaRules),
		Markers:     len(s.tables.Markers),
		Compounds:   len(s.tables.Compounds),
		Fingerprint: s.fingerprint,
	}
}

// String implements fmt.Stringer for logging.
func (s *Snapshot) String() string {
	st := s.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "snapshot %s: ", shortHash(st.Fingerprint))
	fmt.Fprintf(&b, "%d words, %d sandhi, %d samasa, %d markers, %d compounds",
		st.RootWords, st.SandhiRules, st.SamasaRules, st.Markers, st.Compounds)
	return b.String()
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
