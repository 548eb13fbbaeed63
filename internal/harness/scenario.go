package harness

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/sandhi/internal/engine"
	"github.com/roach88/sandhi/internal/ir"
)

// Minimum accuracies, in percent.
const (
	DefaultMinAccuracy = 100.0
	PairsMinAccuracy   = 80.0
)

// Scenario defines a conformance test scenario: a list of word pairs and
// the outcomes the engine is expected to produce for them.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Samasa selects the samasa mode: "permissive" (default) or "strict".
	Samasa string `yaml:"samasa,omitempty"`

	// MinAccuracy is the passing threshold in percent.
	// Zero means DefaultMinAccuracy.
	MinAccuracy float64 `yaml:"min_accuracy,omitempty"`

	// Cases are joined in order.
	Cases []Case `yaml:"cases"`
}

// Case is one word pair and its expected outcome.
type Case struct {
	ID     string `yaml:"id"`
	Word1  string `yaml:"word1"`
	Word2  string `yaml:"word2"`
	Expect Expect `yaml:"expect"`
}

// Expect specifies expected outcome fields. Empty fields are not checked.
type Expect struct {
	Result       string    `yaml:"result,omitempty"`
	Status       ir.Status `yaml:"status,omitempty"`
	Stage        ir.Stage  `yaml:"stage,omitempty"`
	RuleContains string    `yaml:"rule_contains,omitempty"`

	// resultRequired fails an empty actual result even when Result is
	// empty; set for CSV pair files.
	resultRequired bool
}

// IsZero reports whether the expectation checks nothing.
func (e Expect) IsZero() bool {
	return e.Result == "" && e.Status == "" && e.Stage == "" && e.RuleContains == ""
}

// Threshold returns the effective minimum accuracy.
func (s *Scenario) Threshold() float64 {
	if s.MinAccuracy == 0 {
		return DefaultMinAccuracy
	}
	return s.MinAccuracy
}

// LoadScenario reads a scenario file. Files ending in .csv are read as
// word pair tables; anything else is parsed as YAML.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadPairsCSV(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "case:" vs "cases:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// pairColumns are the columns a CSV pair file must carry. Extra columns
// (sandhi_rule_used, is_valid_compound) are ignored.
var pairColumns = []string{"test_id", "word1", "word2", "expected_result"}

// LoadPairsCSV reads a CSV word pair file into a scenario named after the file.
func LoadPairsCSV(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParsePairsCSV(name, f)
}

// ParsePairsCSV parses CSV word pairs from r.
func ParsePairsCSV(name string, r io.Reader) (*Scenario, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid scenario: %s: empty file", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		index[strings.TrimSpace(col)] = i
	}
	for _, col := range pairColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("invalid scenario: %s: missing column %q", name, col)
		}
	}

	scenario := &Scenario{
		Name:        name,
		Description: "word pairs from " + name,
		MinAccuracy: PairsMinAccuracy,
	}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		field := func(col string) string {
			if i := index[col]; i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		if field("word1") == "" && field("word2") == "" {
			continue
		}
		scenario.Cases = append(scenario.Cases, Case{
			ID:    field("test_id"),
			Word1: field("word1"),
			Word2: field("word2"),
			Expect: Expect{
				Result:         field("expected_result"),
				resultRequired: true,
			},
		})
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, ok := engine.ParseSamasaMode(s.Samasa); !ok {
		return fmt.Errorf("samasa: unknown mode %q (want permissive or strict)", s.Samasa)
	}

	if s.MinAccuracy < 0 || s.MinAccuracy > 100 {
		return fmt.Errorf("min_accuracy must be between 0 and 100, got %v", s.MinAccuracy)
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("cases[%d]: id is required", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("cases[%d]: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = true

		if c.Expect.IsZero() && !c.Expect.resultRequired {
			return fmt.Errorf("cases[%d]: expect must set at least one field", i)
		}
		if err := validateExpect(i, c.Expect); err != nil {
			return err
		}
	}

	return nil
}

func validateExpect(index int, e Expect) error {
	switch e.Status {
	case "", ir.StatusSuccess, ir.StatusWarning, ir.StatusError:
	default:
		return fmt.Errorf("cases[%d].expect: unknown status %q", index, e.Status)
	}

	switch e.Stage {
	case "", ir.StageVibhakti, ir.StageDirect, ir.StagePhonetic, ir.StageFallback, ir.StageInvalid:
	default:
		return fmt.Errorf("cases[%d].expect: unknown stage %q", index, e.Stage)
	}

	return nil
}
