package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/roach88/sandhi/internal/ir"
)

// Validation error codes (E100-E199)
const (
	// Root word errors (E101-E109)
	ErrWordEmpty         = "E101" // word text is required
	ErrWordDuplicate     = "E102" // word text must be unique
	ErrWordEndingInvalid = "E103" // ending sound must be a single character
	ErrWordTypeInvalid   = "E104" // unknown part of speech

	// Sandhi rule errors (E110-E119)
	ErrSandhiIDEmpty      = "E110" // rule number is required
	ErrSandhiIDDuplicate  = "E111" // rule number must be unique
	ErrSandhiSoundEmpty   = "E112" // sound1, sound2 and result are required
	ErrSandhiSoundInvalid = "E113" // sounds must be a single character
	ErrSandhiExample      = "E114" // example pair without combined result

	// Vibhakti marker errors (E120-E129)
	ErrMarkerEmpty        = "E120" // marker text is required
	ErrMarkerDuplicate    = "E121" // marker text must be unique
	ErrMarkerCaseInvalid  = "E122" // unknown case type
	ErrMarkerLogicInvalid = "E123" // unknown attachment logic

	// Samasa rule errors (E130-E139)
	ErrSamasaNameEmpty   = "E130" // rule name is required
	ErrSamasaSuffixEmpty = "E131" // suffix to drop is required

	// Compound errors (E140-E149)
	ErrCompoundIncomplete = "E140" // word1, word2 and combined are required
)

// ValidationError represents a single invalid row.
type ValidationError struct {
	Table   string `json:"table"`
	Row     int    `json:"row"` // 1-based position inside the table
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s[%d].%s: %s", e.Code, e.Table, e.Row, e.Field, e.Message)
}

// ValidationErrors is the full list of problems found by Validate.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d validation errors:\n  %s", len(errs), strings.Join(msgs, "\n  "))
}

// Validate checks every table and returns all errors found (does not fail-fast).
func Validate(t ir.Tables) ValidationErrors {
	var errs ValidationErrors
	errs = append(errs, validateRootWords(t.RootWords)...)
	errs = append(errs, validateSandhiRules(t.SandhiRules)...)
	errs = append(errs, validateMarkers(t.Markers)...)
	errs = append(errs, validateSamasaRules(t.SamasaRules)...)
	errs = append(errs, validateCompounds(t.Compounds)...)
	return errs
}

func validateRootWords(words []ir.RootWord) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(words))

	for i, w := range words {
		row := i + 1
		if strings.TrimSpace(w.Text) == "" {
			errs = append(errs, ValidationError{Table: "root_words", Row: row, Field: "word",
				Message: "word is required", Code: ErrWordEmpty})
			continue
		}
		if seen[w.Text] {
			errs = append(errs, ValidationError{Table: "root_words", Row: row, Field: "word",
				Message: fmt.Sprintf("duplicate word %q", w.Text), Code: ErrWordDuplicate})
		}
		seen[w.Text] = true

		if w.EndingSound != "" && utf8.RuneCountInString(w.EndingSound) != 1 {
			errs = append(errs, ValidationError{Table: "root_words", Row: row, Field: "last_sound",
				Message: fmt.Sprintf("ending sound %q must be a single character", w.EndingSound), Code: ErrWordEndingInvalid})
		}
		if !ir.ValidPartsOfSpeech[w.PartOfSpeech] {
			errs = append(errs, ValidationError{Table: "root_words", Row: row, Field: "type",
				Message: fmt.Sprintf("unknown part of speech %q", w.PartOfSpeech), Code: ErrWordTypeInvalid})
		}
	}
	return errs
}

func validateSandhiRules(rules []ir.SandhiRule) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(rules))

	for i, r := range rules {
		row := i + 1
		if strings.TrimSpace(r.ID) == "" {
			errs = append(errs, ValidationError{Table: "sandhi_rules", Row: row, Field: "rule_number",
				Message: "rule number is required", Code: ErrSandhiIDEmpty})
		} else if seen[r.ID] {
			errs = append(errs, ValidationError{Table: "sandhi_rules", Row: row, Field: "rule_number",
				Message: fmt.Sprintf("duplicate rule number %q", r.ID), Code: ErrSandhiIDDuplicate})
		}
		seen[r.ID] = true

		for _, f := range []struct{ name, value string }{
			{"sound1", r.Sound1}, {"sound2", r.Sound2}, {"result", r.Result},
		} {
			switch utf8.RuneCountInString(f.value) {
			case 0:
				errs = append(errs, ValidationError{Table: "sandhi_rules", Row: row, Field: f.name,
					Message: f.name + " is required", Code: ErrSandhiSoundEmpty})
			case 1:
			default:
				errs = append(errs, ValidationError{Table: "sandhi_rules", Row: row, Field: f.name,
					Message: fmt.Sprintf("%s %q must be a single character", f.name, f.value), Code: ErrSandhiSoundInvalid})
			}
		}

		if r.ExampleWord1 != "" && r.ExampleWord2 != "" && r.ExampleCombined == "" {
			errs = append(errs, ValidationError{Table: "sandhi_rules", Row: row, Field: "combined_result",
				Message: "example pair has no combined result", Code: ErrSandhiExample})
		}
	}
	return errs
}

func validateMarkers(markers []ir.VibhaktiMarker) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(markers))

	for i, m := range markers {
		row := i + 1
		if strings.TrimSpace(m.Marker) == "" {
			errs = append(errs, ValidationError{Table: "vibhakti_markers", Row: row, Field: "marker",
				Message: "marker is required", Code: ErrMarkerEmpty})
			continue
		}
		if seen[m.Marker] {
			errs = append(errs, ValidationError{Table: "vibhakti_markers", Row: row, Field: "marker",
				Message: fmt.Sprintf("duplicate marker %q", m.Marker), Code: ErrMarkerDuplicate})
		}
		seen[m.Marker] = true

		if !ir.ValidCaseTypes[m.CaseType] {
			errs = append(errs, ValidationError{Table: "vibhakti_markers", Row: row, Field: "type",
				Message: fmt.Sprintf("unknown case type %q", m.CaseType), Code: ErrMarkerCaseInvalid})
		}
		if !ir.ValidAttachmentLogics[m.Logic] {
			errs = append(errs, ValidationError{Table: "vibhakti_markers", Row: row, Field: "logic_type",
				Message: fmt.Sprintf("unknown attachment logic %q", m.Logic), Code: ErrMarkerLogicInvalid})
		}
	}
	return errs
}

func validateSamasaRules(rules []ir.SamasaRule) []ValidationError {
	var errs []ValidationError
	for i, r := range rules {
		row := i + 1
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, ValidationError{Table: "samasa_rules", Row: row, Field: "rule_name",
				Message: "rule name is required", Code: ErrSamasaNameEmpty})
		}
		if r.SuffixToDrop == "" {
			errs = append(errs, ValidationError{Table: "samasa_rules", Row: row, Field: "suffix_to_drop",
				Message: "suffix to drop is required", Code: ErrSamasaSuffixEmpty})
		}
	}
	return errs
}

func validateCompounds(compounds []ir.Compound) []ValidationError {
	var errs []ValidationError
	for i, c := range compounds {
		if c.Word1 == "" || c.Word2 == "" || c.Combined == "" {
			errs = append(errs, ValidationError{Table: "compounds", Row: i + 1, Field: "combined",
				Message: "word1, word2 and combined are required", Code: ErrCompoundIncomplete})
		}
	}
	return errs
}
