package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/rules"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                    `json:"valid"`
	Source TableSource             `json:"source"`
	Stats  *ir.Stats               `json:"stats,omitempty"`
	Unset  []string                `json:"unset_ending_sounds,omitempty"`
	Errors []rules.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate rule tables",
		Long: `Validate the rule tables named by --data without joining anything.

Every invalid row is reported, not just the first. Root words with no
ending sound are listed as a warning; "sandhi import --fill-sounds" fills
them from the word's spelling.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	snap, src, err := opts.loadSnapshot(cmd.Context())
	if err != nil {
		var verrs rules.ValidationErrors
		if errors.As(err, &verrs) {
			return outputValidationErrors(formatter, src, verrs)
		}
		return outputValidateError(formatter, err)
	}

	stats := snap.Stats()
	result := ValidationResult{
		Valid:  true,
		Source: src,
		Stats:  &stats,
		Unset:  rules.UnsetEndingSounds(snap),
	}
	formatter.VerboseLog("fingerprint %s", stats.Fingerprint)

	if formatter.IsJSON() {
		return formatter.Success(result)
	}

	formatter.Printf("✓ Tables valid: %d root words, %d sandhi rules, %d vibhakti markers, %d samasa rules, %d compounds\n",
		stats.RootWords, stats.SandhiRules, stats.Markers, stats.SamasaRules, stats.Compounds)
	if len(result.Unset) > 0 {
		formatter.Printf("! %d root word(s) have no ending sound: %s\n", len(result.Unset), strings.Join(result.Unset, ", "))
	}
	return nil
}

// outputValidateError outputs a failure to read the tables at all.
func outputValidateError(formatter *OutputFormatter, err error) error {
	code := rules.ErrCodeGeneric
	var loadErr *rules.LoadError
	if errors.As(err, &loadErr) {
		code = loadErr.Code
	}
	_ = formatter.Error(code, err.Error(), nil)
	// Unreadable tables are command-level errors (exit code 2)
	return WrapExitError(ExitCommandError, "validate", err)
}

// outputValidationErrors outputs every invalid row.
func outputValidationErrors(formatter *OutputFormatter, src TableSource, errs rules.ValidationErrors) error {
	exitErr := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))

	if formatter.IsJSON() {
		result := ValidationResult{Valid: false, Source: src, Errors: errs}
		if err := formatter.Failure(errs[0].Code, errs[0].Message, result); err != nil {
			return err
		}
		// Validation failures = exit code 1 (test/validation failure)
		return exitErr
	}

	formatter.Printf("✗ Validation failed\n\n")
	for _, e := range errs {
		formatter.Printf("%s row %d\n", e.Table, e.Row)
		formatter.Printf("  %s: %s: %s\n\n", e.Code, e.Field, e.Message)
	}
	return exitErr
}
