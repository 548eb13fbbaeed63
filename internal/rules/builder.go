package rules

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/sandhi/internal/ir"
)

// unsetSound is the table literal for an ending sound nobody has curated yet.
const unsetSound = "TODO"

// Builder accumulates table rows in insertion order and produces a Snapshot.
// A Builder is not safe for concurrent use.
type Builder struct {
	tables ir.Tables
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddRootWord appends a root word.
func (b *Builder) AddRootWord(w ir.RootWord) *Builder {
	b.tables.RootWords = append(b.tables.RootWords, w)
	return b
}

// AddSandhiRule appends a sandhi rule. Rule order is preserved.
func (b *Builder) AddSandhiRule(r ir.SandhiRule) *Builder {
	b.tables.SandhiRules = append(b.tables.SandhiRules, r)
	return b
}

// AddMarker appends a vibhakti marker.
func (b *Builder) AddMarker(m ir.VibhaktiMarker) *Builder {
	b.tables.Markers = append(b.tables.Markers, m)
	return b
}

// AddSamasaRule appends a samasa rule. Rule order is preserved.
func (b *Builder) AddSamasaRule(r ir.SamasaRule) *Builder {
	b.tables.SamasaRules = append(b.tables.SamasaRules, r)
	return b
}

// AddCompound appends a compound hint.
func (b *Builder) AddCompound(c ir.Compound) *Builder {
	b.tables.Compounds = append(b.tables.Compounds, c)
	return b
}

// AddTables appends every row of t.
func (b *Builder) AddTables(t ir.Tables) *Builder {
	b.tables.RootWords = append(b.tables.RootWords, t.RootWords...)
	b.tables.SandhiRules = append(b.tables.SandhiRules, t.SandhiRules...)
	b.tables.Markers = append(b.tables.Markers, t.Markers...)
	b.tables.SamasaRules = append(b.tables.SamasaRules, t.SamasaRules...)
	b.tables.Compounds = append(b.tables.Compounds, t.Compounds...)
	return b
}

// Build normalizes and validates the accumulated rows and returns an
// immutable Snapshot. All validation problems are reported together as a
// *LoadError wrapping ValidationErrors.
func (b *Builder) Build() (*Snapshot, error) {
	t := normalizeTables(b.tables)

	if errs := Validate(t); len(errs) > 0 {
		return nil, &LoadError{
			Code:    ErrCodeValidation,
			Message: "rule tables failed validation",
			Err:     errs,
		}
	}

	return newSnapshot(t)
}

// normalizeTables returns an NFC copy of t with unset-sound literals cleared.
// Builder rows are never modified in place.
func normalizeTables(t ir.Tables) ir.Tables {
	out := ir.Tables{
		RootWords:   make([]ir.RootWord, len(t.RootWords)),
		SandhiRules: make([]ir.SandhiRule, len(t.SandhiRules)),
		Markers:     make([]ir.VibhaktiMarker, len(t.Markers)),
		SamasaRules: make([]ir.SamasaRule, len(t.SamasaRules)),
		Compounds:   make([]ir.Compound, len(t.Compounds)),
	}

	for i, w := range t.RootWords {
		w.Text = nfc(w.Text)
		w.EndingSound = nfc(w.EndingSound)
		if strings.EqualFold(w.EndingSound, unsetSound) {
			w.EndingSound = ""
		}
		if w.PartOfSpeech == "" {
			w.PartOfSpeech = ir.Other
		}
		out.RootWords[i] = w
	}
	for i, r := range t.SandhiRules {
		r.ID = strings.TrimSpace(r.ID)
		r.Sound1, r.Sound2, r.Result = nfc(r.Sound1), nfc(r.Sound2), nfc(r.Result)
		r.ExampleWord1, r.ExampleWord2 = nfc(r.ExampleWord1), nfc(r.ExampleWord2)
		r.ExampleCombined = nfc(r.ExampleCombined)
		out.SandhiRules[i] = r
	}
	for i, m := range t.Markers {
		m.Marker = nfc(m.Marker)
		out.Markers[i] = m
	}
	for i, r := range t.SamasaRules {
		r.SuffixToDrop = nfc(r.SuffixToDrop)
		r.ReplacementSound = nfc(r.ReplacementSound)
		r.ExampleInput, r.ExampleRoot = nfc(r.ExampleInput), nfc(r.ExampleRoot)
		out.SamasaRules[i] = r
	}
	for i, c := range t.Compounds {
		c.Word1, c.Word2, c.Combined = nfc(c.Word1), nfc(c.Word2), nfc(c.Combined)
		out.Compounds[i] = c
	}
	return out
}

func nfc(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
