package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sandhi/internal/ir"
)

func TestSuggest_Text(t *testing.T) {
	out, err := execute(t, NewSuggestCommand(testOptions("text")), "--limit", "1", "ಸೂರ್ಯಾ")
	require.NoError(t, err)
	assert.Equal(t, "ಸೂರ್ಯ\t83\n", out)
}

func TestSuggest_JSON(t *testing.T) {
	out, err := execute(t, NewSuggestCommand(testOptions("json")), "ಪುಸ್ತಾಕ")
	require.NoError(t, err)

	resp := decode[SuggestResult](t, out)
	assert.Equal(t, "ಪುಸ್ತಾಕ", resp.Data.Word)
	require.NotEmpty(t, resp.Data.Suggestions)
	assert.Equal(t, "ಪುಸ್ತಕ", resp.Data.Suggestions[0].Word)
	assert.LessOrEqual(t, len(resp.Data.Suggestions), 3)
}

func TestSuggest_NoMatch(t *testing.T) {
	out, err := execute(t, NewSuggestCommand(testOptions("json")), "xyzzy")
	require.NoError(t, err)

	resp := decode[SuggestResult](t, out)
	assert.NotNil(t, resp.Data.Suggestions)
	assert.Empty(t, resp.Data.Suggestions)

	out, err = execute(t, NewSuggestCommand(testOptions("text")), "xyzzy")
	require.NoError(t, err)
	assert.Equal(t, "no suggestions for xyzzy\n", out)
}

func TestSuggest_LimitRange(t *testing.T) {
	for _, limit := range []string{"0", "21"} {
		_, err := execute(t, NewSuggestCommand(testOptions("text")), "--limit", limit, "ಮನೆ")
		require.Error(t, err, "limit %s", limit)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	}
}

func TestHints(t *testing.T) {
	out, err := execute(t, NewHintsCommand(testOptions("text")), "ಮನೆ")
	require.NoError(t, err)
	assert.Equal(t, "ಮನೆ + ಅಂಗಳ = ಮನೆಯಂಗಳ\nಮನೆ + ಕೆಲಸ = ಮನೆಕೆಲಸ\n", out)

	out, err = execute(t, NewHintsCommand(testOptions("json")), "ಮನೆ")
	require.NoError(t, err)
	resp := decode[HintsResult](t, out)
	assert.Equal(t, []ir.Hint{
		{NextWord: "ಅಂಗಳ", Result: "ಮನೆಯಂಗಳ"},
		{NextWord: "ಕೆಲಸ", Result: "ಮನೆಕೆಲಸ"},
	}, resp.Data.Hints)
}

func TestHints_Unknown(t *testing.T) {
	out, err := execute(t, NewHintsCommand(testOptions("json")), "ಕಿಟಕಿ")
	require.NoError(t, err)

	resp := decode[HintsResult](t, out)
	assert.NotNil(t, resp.Data.Hints)
	assert.Empty(t, resp.Data.Hints)
}

func TestStats(t *testing.T) {
	out, err := execute(t, NewStatsCommand(testOptions("json")))
	require.NoError(t, err)

	resp := decode[StatsResult](t, out)
	assert.Equal(t, 25, resp.Data.RootWords)
	assert.Equal(t, 10, resp.Data.SandhiRules)
	assert.Equal(t, 14, resp.Data.Markers)
	assert.Equal(t, 6, resp.Data.SamasaRules)
	assert.Equal(t, 10, resp.Data.Compounds)
	assert.Len(t, resp.Data.Fingerprint, 64)
	assert.Equal(t, SourceEmbedded, resp.Data.Source.Kind)
	assert.Equal(t, "permissive", resp.Data.SamasaMode)
	assert.Equal(t, ir.EngineVersion, resp.Data.EngineVersion)
}

func TestStats_Text(t *testing.T) {
	opts := testOptions("text")
	opts.Data = dataDir

	out, err := execute(t, NewStatsCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "source:           csv:"+dataDir+"\n")
	assert.Contains(t, out, "root words:       25\n")
	assert.Contains(t, out, "samasa mode:      permissive\n")
}

func TestStats_CSVMatchesEmbedded(t *testing.T) {
	embedded, err := execute(t, NewStatsCommand(testOptions("json")))
	require.NoError(t, err)

	opts := testOptions("json")
	opts.Data = dataDir
	fromDir, err := execute(t, NewStatsCommand(opts))
	require.NoError(t, err)

	assert.Equal(t, decode[StatsResult](t, embedded).Data.Stats, decode[StatsResult](t, fromDir).Data.Stats)
}
