package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "sandhi", cmd.Use)
	assert.Contains(t, cmd.Long, "vibhakti")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"join", "suggest", "hints", "stats", "validate", "test", "import", "batches", "serve"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dataFlag := cmd.PersistentFlags().Lookup("data")
	require.NotNil(t, dataFlag)
	assert.Equal(t, "", dataFlag.DefValue)

	strictFlag := cmd.PersistentFlags().Lookup("strict-samasa")
	require.NotNil(t, strictFlag)
	assert.Equal(t, "false", strictFlag.DefValue)
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		command string
		flag    string
		def     string
	}{
		{"join", "strict", "false"},
		{"suggest", "limit", "3"},
		{"test", "update", "false"},
		{"test", "filter", ""},
		{"import", "db", ""},
		{"import", "fill-sounds", "false"},
		{"batches", "db", ""},
		{"serve", "addr", DefaultAddr},
	}

	for _, tt := range tests {
		t.Run(tt.command+"/"+tt.flag, func(t *testing.T) {
			cmd := NewRootCommand()
			sub, _, err := cmd.Find([]string{tt.command})
			require.NoError(t, err)

			f := sub.Flags().Lookup(tt.flag)
			require.NotNil(t, f)
			assert.Equal(t, tt.def, f.DefValue)
		})
	}
}

func TestInvalidFormat(t *testing.T) {
	cmd := newRootCommand(testOptions("text"))

	_, err := execute(t, cmd, "--format", "xml", "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestDataFromEnvironment(t *testing.T) {
	t.Setenv(EnvData, dataDir)

	cmd := newRootCommand(testOptions("text"))
	out, err := execute(t, cmd, "--format", "json", "stats")
	require.NoError(t, err)

	resp := decode[StatsResult](t, out)
	assert.Equal(t, SourceCSV, resp.Data.Source.Kind)
	assert.Equal(t, dataDir, resp.Data.Source.Path)
}

func TestDataFlagBeatsEnvironment(t *testing.T) {
	t.Setenv(EnvData, filepath.Join(t.TempDir(), "missing"))

	cmd := newRootCommand(testOptions("text"))
	out, err := execute(t, cmd, "--format", "json", "--data", dataDir, "stats")
	require.NoError(t, err)

	resp := decode[StatsResult](t, out)
	assert.Equal(t, SourceCSV, resp.Data.Source.Kind)
}

func TestEnvFile(t *testing.T) {
	if _, set := os.LookupEnv(EnvData); set {
		t.Skipf("%s already set in the environment", EnvData)
	}
	// godotenv sets the variable process-wide.
	t.Cleanup(func() { os.Unsetenv(EnvData) })

	abs, err := filepath.Abs(dataDir)
	require.NoError(t, err)
	envFile := filepath.Join(t.TempDir(), "sandhi.env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvData+"="+abs+"\n"), 0o644))

	cmd := newRootCommand(testOptions("text"))
	out, err := execute(t, cmd, "--format", "json", "--env-file", envFile, "stats")
	require.NoError(t, err)

	resp := decode[StatsResult](t, out)
	assert.Equal(t, SourceCSV, resp.Data.Source.Kind)
	assert.Equal(t, abs, resp.Data.Source.Path)
}

func TestMissingEnvFileIsIgnored(t *testing.T) {
	cmd := newRootCommand(testOptions("text"))
	_, err := execute(t, cmd, "--env-file", filepath.Join(t.TempDir(), "none.env"), "stats")
	require.NoError(t, err)
}
