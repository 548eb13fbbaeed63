package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/rules"
)

func samasaSnapshot(t *testing.T) *rules.Snapshot {
	t.Helper()
	snap, err := rules.NewBuilder().
		AddRootWord(ir.RootWord{Text: "ಮಗು", PartOfSpeech: ir.Noun}).
		AddRootWord(ir.RootWord{Text: "ನದಿ", PartOfSpeech: ir.Noun}).
		AddSamasaRule(ir.SamasaRule{Name: "Genitive_A", SuffixToDrop: "ನ", ReplacementSound: "ಅ"}).
		AddSamasaRule(ir.SamasaRule{Name: "Genitive_U", SuffixToDrop: "ವಿನ", ReplacementSound: "ಉ"}).
		AddSamasaRule(ir.SamasaRule{Name: "Genitive_I", SuffixToDrop: "ಯ", ReplacementSound: "ಇ"}).
		Build()
	require.NoError(t, err)
	return snap
}

func TestSamasaResolver_Permissive(t *testing.T) {
	r := NewSamasaResolver(samasaSnapshot(t), SamasaPermissive)

	tests := []struct {
		word1, root, rule string
		ok                bool
	}{
		// first suffix match wins even when a longer suffix also matches
		{"ಮಗುವಿನ", "ಮಗುವಿ", "Genitive_A", true},
		{"ನದಿಯ", "ನದಿ", "Genitive_I", true},
		{"ಮನೆ", "", "", false},
		// a suffix that is the whole word does not resolve
		{"ನ", "", "", false},
	}
	for _, tt := range tests {
		root, rule, ok := r.Resolve(tt.word1)
		assert.Equal(t, tt.ok, ok, tt.word1)
		assert.Equal(t, tt.root, root, tt.word1)
		assert.Equal(t, tt.rule, rule, tt.word1)
	}
}

func TestSamasaResolver_RestoresU(t *testing.T) {
	snap, err := rules.NewBuilder().
		AddSamasaRule(ir.SamasaRule{Name: "Genitive_U", SuffixToDrop: "ವಿನ", ReplacementSound: "ಉ"}).
		Build()
	require.NoError(t, err)
	r := NewSamasaResolver(snap, SamasaPermissive)

	root, _, ok := r.Resolve("ಮಗವಿನ")
	require.True(t, ok)
	assert.Equal(t, "ಮಗು", root)

	// a base already ending in u is kept as is
	root, _, ok = r.Resolve("ಮಗುವಿನ")
	require.True(t, ok)
	assert.Equal(t, "ಮಗು", root)

	root, _, ok = r.Resolve("ಉವಿನ")
	require.True(t, ok)
	assert.Equal(t, "ಉ", root)
}

func TestSamasaResolver_Strict(t *testing.T) {
	r := NewSamasaResolver(samasaSnapshot(t), SamasaStrict)

	// ಮಗುವಿ is not a root word, so the ವಿನ rule is tried next
	root, rule, ok := r.Resolve("ಮಗುವಿನ")
	require.True(t, ok)
	assert.Equal(t, "ಮಗು", root)
	assert.Equal(t, "Genitive_U", rule)

	_, _, ok = r.Resolve("ಕಮಲನ")
	assert.False(t, ok, "ಕಮಲ is not a root word")
}
