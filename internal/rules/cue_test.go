package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCUETables = `
root_words: [
	{word: "ಮನೆ", meaning: "house", last_sound: "ಎ"},
	{word: "ಇಂದ್ರ", last_sound: "ಇ"},
	{word: "ಕಾವೇರಿ", last_sound: "TODO", can_combine: false},
]
sandhi_rules: [
	{rule_number: "3", sound1: "ಎ", sound2: "ಅ", result: "ಯ", example_word1: "ಮನೆ", example_word2: "ಅಂಗಳ", combined_result: "ಮನೆಯಂಗಳ"},
	{rule_number: "1", sound1: "ಅ", sound2: "ಆ", result: "ಆ"},
]
vibhakti_markers: [
	{marker: "ಗೆ", type: "dative"},
	{marker: "ಅಲ್ಲಿ", type: "locative", logic_type: "agama_sandhi"},
]
samasa_rules: [
	{rule_name: "Tatpurusha_Genitive", suffix_to_drop: "ನ", replacement_sound: "ಅ"},
]
`

func TestLoadCUESource(t *testing.T) {
	snap, err := LoadCUESource("tables.cue", validCUETables)
	require.NoError(t, err)

	st := snap.Stats()
	assert.Equal(t, 3, st.RootWords)
	assert.Equal(t, 2, st.SandhiRules)
	assert.Equal(t, 2, st.Markers)
	assert.Equal(t, 1, st.SamasaRules)
	assert.Equal(t, 0, st.Compounds)

	// Schema defaults
	w, ok := snap.RootWord("ಮನೆ")
	require.True(t, ok)
	assert.Equal(t, "noun", string(w.PartOfSpeech))
	assert.True(t, w.Combinable)

	m, ok := snap.Marker("ಗೆ")
	require.True(t, ok)
	assert.Equal(t, "suffix", string(m.Logic))

	_, ok = snap.KnownEndingSound("ಕಾವೇರಿ")
	assert.False(t, ok)

	rules := snap.SandhiRules()
	assert.Equal(t, "3", rules[0].ID, "list order is table order")
}

func TestLoadCUESource_MatchesCSVFingerprint(t *testing.T) {
	fromCUE, err := LoadCUESource("tables.cue", `
root_words: [{word: "ಮನೆ", meaning: "house", type: "noun", last_sound: "ಎ"}]
sandhi_rules: [{rule_number: "3", sound1: "ಎ", sound2: "ಅ", result: "ಯ", example_word1: "ಮನೆ", example_word2: "ಅಂಗಳ", combined_result: "ಮನೆಯಂಗಳ"}]
vibhakti_markers: [{marker: "ಗೆ", meaning: "to", type: "dative", logic_type: "suffix"}]
samasa_rules: [{rule_name: "Tatpurusha_Genitive", suffix_to_drop: "ನ", replacement_sound: "ಅ", example_input: "ಸೂರ್ಯನ", example_root: "ಸೂರ್ಯ"}]
`)
	require.NoError(t, err)

	fsys := minimalTables()
	fsys[RootWordsFile].Data = []byte("word,meaning,type,last_sound,can_combine\nಮನೆ,house,noun,ಎ,yes\n")
	fromCSV, err := LoadCSV(fsys)
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Fingerprint(), fromCUE.Fingerprint())
}

func TestLoadCUESource_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{
			name: "syntax error",
			src:  `root_words: [`,
			code: ErrCodeCUELoad,
		},
		{
			name: "missing required table",
			src:  `root_words: []`,
			code: ErrCodeNotFound,
		},
		{
			name: "multi-character sound",
			src: `
root_words: []
sandhi_rules: [{rule_number: "1", sound1: "ಅಅ", sound2: "ಆ", result: "ಆ"}]
vibhakti_markers: []
samasa_rules: []
`,
			code: ErrCodeCUESchema,
		},
		{
			name: "unknown case type",
			src: `
root_words: []
sandhi_rules: []
vibhakti_markers: [{marker: "ಗೆ", type: "vocative"}]
samasa_rules: []
`,
			code: ErrCodeCUESchema,
		},
		{
			name: "unknown field is rejected by closed definition",
			src: `
root_words: [{word: "ಮನೆ", colour: "red"}]
sandhi_rules: []
vibhakti_markers: []
samasa_rules: []
`,
			code: ErrCodeCUESchema,
		},
		{
			name: "duplicate word passes schema but fails validation",
			src: `
root_words: [{word: "ಮನೆ"}, {word: "ಮನೆ"}]
sandhi_rules: []
vibhakti_markers: []
samasa_rules: []
`,
			code: ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCUESource("tables.cue", tt.src)
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T: %v", err, err)
			assert.Equal(t, tt.code, loadErr.Code, loadErr.Error())
		})
	}
}

func TestLoadCUEDir(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"no package clause", map[string]string{"tables.cue": validCUETables}},
		{"package clause", map[string]string{"tables.cue": "package tables\n" + validCUETables}},
		{"split across files", map[string]string{
			"words.cue": "package tables\n" + `root_words: [{word: "ಇಂದ್ರ", last_sound: "ಇ"}]`,
			"rules.cue": "package tables\n" + `
sandhi_rules: [{rule_number: "1", sound1: "ಅ", sound2: "ಆ", result: "ಆ"}]
vibhakti_markers: [{marker: "ಗೆ", type: "dative"}]
samasa_rules: [{rule_name: "Tatpurusha_Genitive", suffix_to_drop: "ನ", replacement_sound: "ಅ"}]
`,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
			}

			snap, err := LoadCUEDir(dir)
			require.NoError(t, err)
			assert.True(t, snap.IsKnownWord("ಇಂದ್ರ"))
		})
	}
}

func TestFindCUEFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.cue"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cue"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c.cue"), nil, 0o644))

	files, err := FindCUEFiles(dir)
	require.NoError(t, err)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(abs, "a.cue"), filepath.Join(abs, "b.cue")}, files)
}

func TestLoadCUEDir_NoFiles(t *testing.T) {
	_, err := LoadCUEDir(t.TempDir())

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}
