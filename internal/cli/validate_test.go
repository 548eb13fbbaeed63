package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sandhi/internal/rules"
)

func TestValidateDefaultTables(t *testing.T) {
	out, err := execute(t, NewValidateCommand(testOptions("text")))
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Tables valid: 25 root words, 10 sandhi rules, 14 vibhakti markers, 6 samasa rules, 10 compounds")
	assert.Contains(t, out, "! 2 root word(s) have no ending sound: ಕಾವೇರಿ, ಹಸು")
}

func TestValidateJSON(t *testing.T) {
	opts := testOptions("json")
	opts.Data = dataDir

	out, err := execute(t, NewValidateCommand(opts))
	require.NoError(t, err)

	resp := decode[ValidationResult](t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, SourceCSV, resp.Data.Source.Kind)
	require.NotNil(t, resp.Data.Stats)
	assert.Equal(t, 25, resp.Data.Stats.RootWords)
	assert.Equal(t, []string{"ಕಾವೇರಿ", "ಹಸು"}, resp.Data.Unset)
}

func TestValidateReportsEveryError(t *testing.T) {
	files := validTables()
	files["root_words.csv"] = "word,meaning,type,last_sound,can_combine\n" +
		"ಮನೆ,house,noun,ಎ,yes\n" +
		"ಮನೆ,house,thing,ಎ,yes\n"
	opts := testOptions("text")
	opts.Data = writeTables(t, files)

	out, err := execute(t, NewValidateCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "validation failed with 2 error(s)")

	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, rules.ErrWordDuplicate+": word:")
	assert.Contains(t, out, rules.ErrWordTypeInvalid+": type:")
	assert.Contains(t, out, "root_words row 2")
}

func TestValidateReportsEveryErrorJSON(t *testing.T) {
	files := validTables()
	files["vibhakti_rules.csv"] = "marker,meaning,type,logic_type\n" +
		"ಗೆ,to,dative,suffix\n" +
		"ಗೆ,to,sideways,suffix\n"
	opts := testOptions("json")
	opts.Data = writeTables(t, files)

	out, err := execute(t, NewValidateCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decode[ValidationResult](t, out)
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.Len(t, resp.Data.Errors, 2)
	for _, e := range resp.Data.Errors {
		assert.Equal(t, "vibhakti_markers", e.Table)
		assert.Equal(t, 2, e.Row)
	}
}

func TestValidateNonExistentDirectory(t *testing.T) {
	opts := testOptions("text")
	opts.Data = "/nonexistent/directory/path"

	out, err := execute(t, NewValidateCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
	assert.Contains(t, out, "not found")
}

func TestValidateMissingTable(t *testing.T) {
	files := validTables()
	delete(files, "sandhi_rules.csv")
	opts := testOptions("text")
	opts.Data = writeTables(t, files)

	_, err := execute(t, NewValidateCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
