package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/sandhi/internal/engine"
	"github.com/roach88/sandhi/internal/rules"
	"github.com/roach88/sandhi/internal/store"
	"github.com/roach88/sandhi/internal/suggest"
)

// SourceKind names where a snapshot's tables were read from.
type SourceKind string

const (
	SourceEmbedded SourceKind = "embedded"
	SourceCSV      SourceKind = "csv"
	SourceCUE      SourceKind = "cue"
	SourceStore    SourceKind = "store"
)

// storeExts are file extensions treated as SQLite table stores.
var storeExts = map[string]bool{".db": true, ".sqlite": true, ".sqlite3": true}

// TableSource describes the tables behind a loaded snapshot.
type TableSource struct {
	Kind  SourceKind   `json:"kind"`
	Path  string       `json:"path,omitempty"`
	Batch *store.Batch `json:"batch,omitempty"`
}

// String returns the source in the form recorded on import batches.
func (s TableSource) String() string {
	if s.Path == "" {
		return string(s.Kind)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.Path)
}

// LoadSnapshot reads rule tables from path:
//   - "" loads the embedded default tables
//   - a directory holding .cue files is loaded as CUE
//   - any other directory is loaded as CSV tables
//   - a .db/.sqlite file is opened as a table store and its latest batch loaded
func LoadSnapshot(ctx context.Context, path string) (*rules.Snapshot, TableSource, error) {
	if path == "" {
		snap, err := rules.LoadDefault()
		return snap, TableSource{Kind: SourceEmbedded}, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, TableSource{}, &rules.LoadError{Code: rules.ErrCodeNotFound, Message: "table source not found", Source: path}
	}
	if err != nil {
		return nil, TableSource{}, &rules.LoadError{Code: rules.ErrCodeReadFailed, Message: "stat table source", Source: path, Err: err}
	}

	if !info.IsDir() {
		if !storeExts[strings.ToLower(filepath.Ext(path))] {
			return nil, TableSource{}, &rules.LoadError{
				Code:    rules.ErrCodeNotFound,
				Message: "unsupported table source (want a directory or a .db file)",
				Source:  path,
			}
		}
		return loadFromStore(ctx, path)
	}

	cueFiles, err := rules.FindCUEFiles(path)
	if err != nil {
		return nil, TableSource{}, &rules.LoadError{Code: rules.ErrCodeReadFailed, Message: "scan directory", Source: path, Err: err}
	}
	if len(cueFiles) > 0 {
		snap, err := rules.LoadCUEDir(path)
		return snap, TableSource{Kind: SourceCUE, Path: path}, err
	}
	snap, err := rules.LoadCSVDir(path)
	return snap, TableSource{Kind: SourceCSV, Path: path}, err
}

func loadFromStore(ctx context.Context, path string) (*rules.Snapshot, TableSource, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, TableSource{}, &rules.LoadError{Code: rules.ErrCodeStoreFailed, Message: "open table store", Source: path, Err: err}
	}
	defer st.Close()

	snap, batch, err := st.Load(ctx)
	if err != nil {
		return nil, TableSource{}, err
	}
	return snap, TableSource{Kind: SourceStore, Path: path, Batch: &batch}, nil
}

// loadSnapshot loads tables from --data and logs where they came from.
func (o *RootOptions) loadSnapshot(ctx context.Context) (*rules.Snapshot, TableSource, error) {
	snap, src, err := LoadSnapshot(ctx, o.Data)
	if err != nil {
		return nil, src, err
	}
	o.logger().Debug("loaded tables",
		zap.String("source", src.String()),
		zap.String("fingerprint", snap.Fingerprint()),
	)
	return snap, src, nil
}

// samasaMode maps --strict-samasa onto an engine mode.
func (o *RootOptions) samasaMode() engine.SamasaMode {
	if o.StrictSamasa {
		return engine.SamasaStrict
	}
	return engine.SamasaPermissive
}

// newEngine builds an engine over snap configured from the global flags.
func (o *RootOptions) newEngine(snap *rules.Snapshot, extra ...engine.Option) *engine.Engine {
	opts := []engine.Option{
		engine.WithSamasaMode(o.samasaMode()),
		engine.WithSuggester(suggest.NewMatcher(snap.Vocabulary()), engine.DefaultSuggestionLimit),
		engine.WithLogger(o.logger()),
	}
	return engine.New(snap, append(opts, extra...)...)
}

// newFormatter builds the output formatter for cmd's writers.
func (o *RootOptions) newFormatter(out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   o.Verbose,
	}
}

// loadErrorExit converts a table load failure into a command error,
// printing it in the configured format.
func loadErrorExit(f *OutputFormatter, err error) error {
	code := rules.ErrCodeGeneric
	var loadErr *rules.LoadError
	if errors.As(err, &loadErr) {
		code = loadErr.Code
	}
	if outErr := f.Error(code, err.Error(), nil); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitCommandError, "load tables", err)
}
