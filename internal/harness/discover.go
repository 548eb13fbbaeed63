package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScenarioNotFoundError is returned when a scenario path does not exist or
// a directory holds no scenario files.
type ScenarioNotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *ScenarioNotFoundError) Error() string {
	return fmt.Sprintf("no scenario files found at %s", e.Path)
}

// isScenarioFile reports whether name has a scenario file extension.
func isScenarioFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".csv":
		return true
	}
	return false
}

// FindScenarios resolves path to scenario files. A file is returned as is;
// a directory yields its .yaml, .yml and .csv files (not recursive), sorted
// by name so runs are reproducible.
func FindScenarios(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &ScenarioNotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isScenarioFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	if len(files) == 0 {
		return nil, &ScenarioNotFoundError{Path: path}
	}
	sort.Strings(files)
	return files, nil
}

// LoadScenarios loads every scenario FindScenarios resolves from path.
func LoadScenarios(path string) ([]*Scenario, error) {
	files, err := FindScenarios(path)
	if err != nil {
		return nil, err
	}

	scenarios := make([]*Scenario, 0, len(files))
	for _, f := range files {
		s, err := LoadScenario(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
