package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvData = "SANDHI_DATA"
	EnvAddr = "SANDHI_ADDR"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose      bool
	Format       string // "json" | "text"
	Data         string // tables: dir of .csv or .cue files, a .db store, or "" for embedded
	StrictSamasa bool
	EnvFile      string

	// Logger overrides the logger built from Verbose (for testing).
	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sandhi CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandhi",
		Short: "sandhi - Kannada word combination engine",
		Long: `Join two Kannada words by applying vibhakti, samasa and sandhi rules.

Rule tables are read from --data: a directory of CSV tables, a directory of
CUE tables, or a SQLite table store written by "sandhi import". Without
--data the tables embedded in the binary are used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.loadEnv(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Data, "data", "", "rule tables: CSV dir, CUE dir or .db store (default: embedded; env "+EnvData+")")
	cmd.PersistentFlags().BoolVar(&opts.StrictSamasa, "strict-samasa", false, "accept samasa roots only if they are dictionary words")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file read before flags are resolved")

	// Add subcommands
	cmd.AddCommand(NewJoinCommand(opts))
	cmd.AddCommand(NewSuggestCommand(opts))
	cmd.AddCommand(NewHintsCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewBatchesCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// loadEnv reads the dotenv file, if present, and fills --data from the
// environment when the flag was not given. Variables already set in the
// process environment win over the file.
func (o *RootOptions) loadEnv(cmd *cobra.Command) error {
	if o.EnvFile != "" {
		if err := godotenv.Load(o.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return NewExitError(ExitCommandError, fmt.Sprintf("read env file %s: %v", o.EnvFile, err))
		}
	}
	if !cmd.Flags().Changed("data") {
		if v := os.Getenv(EnvData); v != "" {
			o.Data = v
		}
	}
	return nil
}

// logger returns the configured logger, building a production logger on
// stderr the first time. Verbose lowers the level to debug.
func (o *RootOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if o.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	o.Logger = l
	return l
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
