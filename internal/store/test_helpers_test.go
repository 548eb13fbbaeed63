package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/rules"
	"github.com/roach88/sandhi/internal/testutil"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T, ids ...string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	var opts []Option
	if len(ids) > 0 {
		opts = append(opts, WithIDGenerator(testutil.NewFixedIDGenerator(ids...)))
	}
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestSnapshot builds a small snapshot with one row in every table.
func createTestSnapshot(t *testing.T, extraWords ...string) *rules.Snapshot {
	t.Helper()
	b := rules.NewBuilder().
		AddRootWord(ir.RootWord{Text: "ಮನೆ", Meaning: "house", PartOfSpeech: ir.Noun, EndingSound: "ಎ", Combinable: true}).
		AddSandhiRule(ir.SandhiRule{ID: "3", Sound1: "ಎ", Sound2: "ಅ", Result: "ಯ",
			ExampleWord1: "ಮನೆ", ExampleWord2: "ಅಂಗಳ", ExampleCombined: "ಮನೆಯಂಗಳ"}).
		AddSandhiRule(ir.SandhiRule{ID: "1", Sound1: "ಅ", Sound2: "ಆ", Result: "ಆ"}).
		AddMarker(ir.VibhaktiMarker{Marker: "ಗೆ", Meaning: "to", CaseType: ir.CaseDative, Logic: ir.LogicSuffix}).
		AddSamasaRule(ir.SamasaRule{Name: "Tatpurusha_Genitive", SuffixToDrop: "ನ", ReplacementSound: "ಅ"}).
		AddCompound(ir.Compound{Word1: "ಮನೆ", Word2: "ಅಂಗಳ", Combined: "ಮನೆಯಂಗಳ", Frequency: "medium"})
	for _, w := range extraWords {
		b.AddRootWord(ir.RootWord{Text: w, PartOfSpeech: ir.Noun})
	}
	snap, err := b.Build()
	require.NoError(t, err)
	return snap
}
