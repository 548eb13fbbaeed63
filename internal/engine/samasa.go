package engine

import (
	"strings"

	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/rules"
)

// SamasaMode controls how a candidate samasa root is accepted.
type SamasaMode int

const (
	// SamasaPermissive accepts the first rule whose suffix matches,
	// whether or not the root is a dictionary word.
	SamasaPermissive SamasaMode = iota

	// SamasaStrict accepts a candidate root only if it is a known root
	// word; otherwise the next rule is tried.
	SamasaStrict
)

// String returns the flag spelling of the mode.
func (m SamasaMode) String() string {
	if m == SamasaStrict {
		return "strict"
	}
	return "permissive"
}

// ParseSamasaMode converts a flag value into a SamasaMode.
func ParseSamasaMode(s string) (SamasaMode, bool) {
	switch s {
	case "", "permissive":
		return SamasaPermissive, true
	case "strict":
		return SamasaStrict, true
	}
	return SamasaPermissive, false
}

const (
	vowelU     = "ಉ"
	vowelSignU = "ು"
)

// SamasaResolver strips embedded case suffixes from the first word of a compound.
type SamasaResolver struct {
	snap *rules.Snapshot
	mode SamasaMode
}

// NewSamasaResolver creates a resolver over the samasa rules of snap.
func NewSamasaResolver(snap *rules.Snapshot, mode SamasaMode) *SamasaResolver {
	return &SamasaResolver{snap: snap, mode: mode}
}

// Resolve returns the root of word1 and the name of the rule that produced it.
//
// Rules are tried in table order. For the first rule whose suffix ends word1
// the suffix is removed; if the rule's replacement sound is ಉ and the base
// does not already end in that vowel (letter or sign), the ು sign is appended
// to restore the elided vowel. A match that leaves nothing of word1 stops the scan unresolved.
func (r *SamasaResolver) Resolve(word1 string) (root string, rule string, ok bool) {
	r.snap.EachSamasaRule(func(sr ir.SamasaRule) bool {
		if !strings.HasSuffix(word1, sr.SuffixToDrop) {
			return true
		}
		base := strings.TrimSuffix(word1, sr.SuffixToDrop)
		if base == "" {
			return false
		}

		candidate := base
		if sr.ReplacementSound == vowelU && !endsInU(base) {
			candidate = base + vowelSignU
		}

		if r.mode == SamasaStrict && !r.snap.IsKnownWord(candidate) {
			return true
		}
		root, rule, ok = candidate, sr.Name, true
		return false
	})
	return root, rule, ok
}

func endsInU(s string) bool {
	return strings.HasSuffix(s, vowelU) || strings.HasSuffix(s, vowelSignU)
}
