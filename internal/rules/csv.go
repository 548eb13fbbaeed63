package rules

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/roach88/sandhi/data"
	"github.com/roach88/sandhi/internal/ir"
)

// Table file names, as written by the data-preparation tools.
const (
	RootWordsFile   = "root_words.csv"
	SandhiRulesFile = "sandhi_rules.csv"
	MarkersFile     = "vibhakti_rules.csv"
	SamasaRulesFile = "samasa_rules.csv"
	CompoundsFile   = "compound_words.csv"
)

// utf8BOM is written by spreadsheet exports and must be ignored.
const utf8BOM = "\ufeff"

// LoadDefault builds a Snapshot from the tables embedded in the binary.
func LoadDefault() (*Snapshot, error) {
	return LoadCSV(data.Tables)
}

// LoadCSVDir builds a Snapshot from the CSV tables in dir.
func LoadCSVDir(dir string) (*Snapshot, error) {
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
	return LoadCSV(os.DirFS(dir))
}

// LoadCSV builds a Snapshot from CSV tables in fsys.
// The four rule tables are required; the compound table is optional.
// Loading fails on the first unreadable file or malformed row.
func LoadCSV(fsys fs.FS) (*Snapshot, error) {
	t, err := ReadCSVTables(fsys)
	if err != nil {
		return nil, err
	}
	return NewBuilder().AddTables(t).Build()
}

// ReadCSVTables parses the CSV tables in fsys without validating them.
func ReadCSVTables(fsys fs.FS) (ir.Tables, error) {
	var t ir.Tables

	rows, err := readTable(fsys, RootWordsFile, true, "word")
	if err != nil {
		return t, err
	}
	for _, r := range rows {
		combinable, err := parseBool(r.get("can_combine"))
		if err != nil {
			return t, r.fail("can_combine", err)
		}
		t.RootWords = append(t.RootWords, ir.RootWord{
			Text:         r.get("word"),
			Meaning:      r.get("meaning"),
			PartOfSpeech: ir.PartOfSpeech(strings.ToLower(r.get("type"))),
			EndingSound:  r.get("last_sound"),
			Combinable:   combinable,
		})
	}

	rows, err = readTable(fsys, SandhiRulesFile, true, "rule_number", "sound1", "sound2", "result")
	if err != nil {
		return t, err
	}
	for _, r := range rows {
		t.SandhiRules = append(t.SandhiRules, ir.SandhiRule{
			ID:              r.get("rule_number"),
			Sound1:          r.get("sound1"),
			Sound2:          r.get("sound2"),
			Result:          r.get("result"),
			ExampleWord1:    r.get("example_word1"),
			ExampleWord2:    r.get("example_word2"),
			ExampleCombined: r.get("combined_result"),
		})
	}

	rows, err = readTable(fsys, MarkersFile, true, "marker")
	if err != nil {
		return t, err
	}
	for _, r := range rows {
		t.Markers = append(t.Markers, ir.VibhaktiMarker{
			Marker:   r.get("marker"),
			Meaning:  r.get("meaning"),
			CaseType: ir.CaseType(strings.ToLower(r.get("type"))),
			Logic:    ir.AttachmentLogic(strings.ToLower(r.get("logic_type"))),
		})
	}

	rows, err = readTable(fsys, SamasaRulesFile, true, "rule_name", "suffix_to_drop", "replacement_sound")
	if err != nil {
		return t, err
	}
	for _, r := range rows {
		t.SamasaRules = append(t.SamasaRules, ir.SamasaRule{
			Name:             r.get("rule_name"),
			SuffixToDrop:     r.get("suffix_to_drop"),
			ReplacementSound: r.get("replacement_sound"),
			ExampleInput:     r.get("example_input"),
			ExampleRoot:      r.get("example_root"),
		})
	}

	rows, err = readTable(fsys, CompoundsFile, false, "word1", "word2", "combined")
	if err != nil {
		return t, err
	}
	for _, r := range rows {
		t.Compounds = append(t.Compounds, ir.Compound{
			Word1:     r.get("word1"),
			Word2:     r.get("word2"),
			Combined:  r.get("combined"),
			Frequency: r.get("frequency"),
		})
	}

	return t, nil
}

// csvRow is one data row addressed by header name.
type csvRow struct {
	file   string
	line   int
	header map[string]int
	fields []string
}

func (r csvRow) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r csvRow) fail(col string, err error) *LoadError {
	return &LoadError{
		Code:    ErrCodeInvalidRow,
		Message: fmt.Sprintf("column %q", col),
		Source:  r.file,
		Line:    r.line,
		Err:     err,
	}
}

// readTable reads a header-keyed CSV file. A missing optional file yields no rows.
func readTable(fsys fs.FS, name string, required bool, columns ...string) ([]csvRow, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		if !required {
			return nil, nil
		}
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "required table missing", Source: name}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: "open table", Source: name, Err: err}
	}
	defer f.Close()

	return parseTable(f, name, columns)
}

func parseTable(r io.Reader, name string, columns []string) ([]csvRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: "table is empty", Source: name}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: "read header", Source: name, Line: 1, Err: err}
	}

	header := make(map[string]int, len(head))
	for i, h := range head {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		header[strings.TrimSpace(h)] = i
	}
	for _, col := range columns {
		if _, ok := header[col]; !ok {
			return nil, &LoadError{Code: ErrCodeMissingCol, Message: fmt.Sprintf("missing column %q", col), Source: name, Line: 1}
		}
	}

	var rows []csvRow
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			line := 0
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &LoadError{Code: ErrCodeInvalidRow, Message: "malformed row", Source: name, Line: line, Err: err}
		}
		line, _ := cr.FieldPos(0)
		if isBlank(fields) {
			continue
		}
		rows = append(rows, csvRow{file: name, line: line, header: header, fields: fields})
	}
	return rows, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseBool accepts the spellings used by the table exports.
// An empty cell means true: every word combines unless marked otherwise.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(s)
}
