package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sandhi/internal/ir"
)

func TestJoin_Text(t *testing.T) {
	out, err := execute(t, NewJoinCommand(testOptions("text")), "ಮಹಾ", "ಆತ್ಮ")
	require.NoError(t, err)

	assert.Equal(t, "ಮಹಾತ್ಮ\n"+
		"  status: success\n"+
		"  stage:  direct\n"+
		"  rule:   Direct Match (Rule 2)\n", out)
}

func TestJoin_JSON(t *testing.T) {
	out, err := execute(t, NewJoinCommand(testOptions("json")), "ಮನೆ", "ಗೆ")
	require.NoError(t, err)

	resp := decode[ir.Outcome](t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ಮನೆಗೆ", resp.Data.Result)
	assert.Equal(t, ir.StatusSuccess, resp.Data.Status)
	assert.Equal(t, ir.StageVibhakti, resp.Data.Stage)
	assert.Equal(t, "Vibhakti: ಗೆ", resp.Data.Rule)
}

func TestJoin_FallbackIsNotAnError(t *testing.T) {
	out, err := execute(t, NewJoinCommand(testOptions("text")), "ಕಿಟಕಿ", "ಬಾಗಿಲು")
	require.NoError(t, err)

	assert.Contains(t, out, "ಕಿಟಕಿಬಾಗಿಲು\n")
	assert.Contains(t, out, "status: warning")
	assert.Contains(t, out, "msg:    No Sandhi rule found")
}

func TestJoin_StrictRejectsUnknownWord(t *testing.T) {
	out, err := execute(t, NewJoinCommand(testOptions("text")), "--strict", "ಮನ", "ಗೆ")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E301]: Unknown word: ಮನ")
}

func TestJoin_StrictRejectsUnknownWordJSON(t *testing.T) {
	out, err := execute(t, NewJoinCommand(testOptions("json")), "--strict", "ಮನೆ", "ಬಾಗಿಲು")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decode[ir.Outcome](t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUnknownWord, resp.Error.Code)
	assert.Equal(t, ir.StageInvalid, resp.Data.Stage)
	assert.Empty(t, resp.Data.Result)
}

func TestJoin_SamasaModeFlag(t *testing.T) {
	// A permissive samasa rule strips the first word before sandhi runs.
	out, err := execute(t, newRootCommand(testOptions("json")), "--format", "json", "join", "ಸೂರ್ಯ", "ಉದಯ")
	require.NoError(t, err)
	assert.Equal(t, "ಸೂರ್ಯಉದಯ", decode[ir.Outcome](t, out).Data.Result)

	out, err = execute(t, newRootCommand(testOptions("json")), "--format", "json", "--strict-samasa", "join", "ಸೂರ್ಯ", "ಉದಯ")
	require.NoError(t, err)
	assert.Equal(t, "ಸೂರ್ಯೋದಯ", decode[ir.Outcome](t, out).Data.Result)
}

func TestJoin_ArgCount(t *testing.T) {
	_, err := execute(t, NewJoinCommand(testOptions("text")), "ಮನೆ")
	require.Error(t, err)
}

func TestJoin_MissingData(t *testing.T) {
	opts := testOptions("text")
	opts.Data = "/nonexistent/tables"

	out, err := execute(t, NewJoinCommand(opts), "ಮನೆ", "ಗೆ")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}
