package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/roach88/sandhi/internal/ir"
)

//go:embed schema.cue
var schemaSource string

// cueTables maps CUE field names to whether the table is required.
var cueTables = []struct {
	field    string
	required bool
}{
	{"root_words", true},
	{"sandhi_rules", true},
	{"vibhakti_markers", true},
	{"samasa_rules", true},
	{"compounds", false},
}

// LoadCUEDir builds a Snapshot from the CUE files in dir.
// The files are unified with the embedded schema before decoding.
func LoadCUEDir(dir string) (*Snapshot, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "tables directory not found", Source: dir}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: "access tables directory", Source: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "not a directory", Source: dir}
	}

	files, err := FindCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: "scan tables directory", Source: dir, Err: err}
	}
	if len(files) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: "no CUE files found", Source: dir}
	}

	// Files are passed by name so tables without a package clause load too.
	ctx := cuecontext.New()
	instances := load.Instances(files, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeCUELoad, Message: "no CUE instances loaded", Source: dir}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, formatCUEError(ErrCodeCUELoad, inst.Err)
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, formatCUEError(ErrCodeCUELoad, err)
	}
	return buildFromCUE(ctx, value)
}

// LoadCUESource builds a Snapshot from a single CUE document.
func LoadCUESource(name, src string) (*Snapshot, error) {
	ctx := cuecontext.New()
	value := ctx.CompileString(src, cue.Filename(name))
	if err := value.Err(); err != nil {
		return nil, formatCUEError(ErrCodeCUELoad, err)
	}
	return buildFromCUE(ctx, value)
}

func buildFromCUE(ctx *cue.Context, value cue.Value) (*Snapshot, error) {
	t, err := decodeCUETables(ctx, value)
	if err != nil {
		return nil, err
	}
	return NewBuilder().AddTables(t).Build()
}

// decodeCUETables checks value against the schema and decodes every table.
func decodeCUETables(ctx *cue.Context, value cue.Value) (ir.Tables, error) {
	var t ir.Tables

	for _, tbl := range cueTables {
		if tbl.required && !value.LookupPath(cue.ParsePath(tbl.field)).Exists() {
			return t, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("required table %q missing", tbl.field)}
		}
	}

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return t, formatCUEError(ErrCodeGeneric, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return t, formatCUEError(ErrCodeCUESchema, err)
	}

	decode := func(field string, target any) error {
		v := unified.LookupPath(cue.ParsePath(field))
		if !v.Exists() {
			return nil
		}
		if err := v.Decode(target); err != nil {
			return formatCUEError(ErrCodeCUESchema, err)
		}
		return nil
	}

	if err := decode("root_words", &t.RootWords); err != nil {
		return t, err
	}
	if err := decode("sandhi_rules", &t.SandhiRules); err != nil {
		return t, err
	}
	if err := decode("vibhakti_markers", &t.Markers); err != nil {
		return t, err
	}
	if err := decode("samasa_rules", &t.SamasaRules); err != nil {
		return t, err
	}
	if err := decode("compounds", &t.Compounds); err != nil {
		return t, err
	}
	return t, nil
}

// FindCUEFiles returns the absolute paths of the .cue files directly in dir,
// sorted by name. Subdirectories are not searched: one directory holds one
// set of tables.
func FindCUEFiles(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".cue" {
			files = append(files, filepath.Join(abs, e.Name()))
		}
	}
	return files, nil
}
