package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sandhi/internal/ir"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		tables ir.Tables
		codes  []string
	}{
		{
			name:   "empty tables are valid",
			tables: ir.Tables{},
		},
		{
			name: "empty word",
			tables: ir.Tables{RootWords: []ir.RootWord{
				{Text: " ", PartOfSpeech: ir.Noun},
			}},
			codes: []string{ErrWordEmpty},
		},
		{
			name: "multi-character ending sound",
			tables: ir.Tables{RootWords: []ir.RootWord{
				{Text: "ಮನೆ", PartOfSpeech: ir.Noun, EndingSound: "ಎಎ"},
			}},
			codes: []string{ErrWordEndingInvalid},
		},
		{
			name: "unknown part of speech",
			tables: ir.Tables{RootWords: []ir.RootWord{
				{Text: "ಮನೆ", PartOfSpeech: "thing"},
			}},
			codes: []string{ErrWordTypeInvalid},
		},
		{
			name: "sandhi rule problems",
			tables: ir.Tables{SandhiRules: []ir.SandhiRule{
				{ID: "", Sound1: "ಅ", Sound2: "ಆ", Result: "ಆ"},
				{ID: "2", Sound1: "ಅ", Sound2: "ಆಆ", Result: "ಆ"},
				{ID: "2", Sound1: "ಅ", Sound2: "ಆ", Result: "ಆ", ExampleWord1: "ರಾಮ", ExampleWord2: "ಆಲಯ"},
			}},
			codes: []string{ErrSandhiIDEmpty, ErrSandhiSoundInvalid, ErrSandhiIDDuplicate, ErrSandhiExample},
		},
		{
			name: "marker problems",
			tables: ir.Tables{Markers: []ir.VibhaktiMarker{
				{Marker: "", CaseType: ir.CaseDative, Logic: ir.LogicSuffix},
				{Marker: "ಗೆ", CaseType: ir.CaseDative, Logic: "glue"},
				{Marker: "ಗೆ", CaseType: ir.CaseDative, Logic: ir.LogicSuffix},
			}},
			codes: []string{ErrMarkerEmpty, ErrMarkerLogicInvalid, ErrMarkerDuplicate},
		},
		{
			name: "samasa problems",
			tables: ir.Tables{SamasaRules: []ir.SamasaRule{
				{Name: "", SuffixToDrop: ""},
			}},
			codes: []string{ErrSamasaNameEmpty, ErrSamasaSuffixEmpty},
		},
		{
			name: "incomplete compound",
			tables: ir.Tables{Compounds: []ir.Compound{
				{Word1: "ಮನೆ", Word2: "ಅಂಗಳ"},
			}},
			codes: []string{ErrCompoundIncomplete},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.tables)
			if len(tt.codes) == 0 {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, len(tt.codes), "errors: %v", errs)
			for i, code := range tt.codes {
				assert.Equal(t, code, errs[i].Code, "error %d: %s", i, errs[i].Message)
			}
		})
	}
}

func TestValidationError_Format(t *testing.T) {
	err := ValidationError{Table: "sandhi_rules", Row: 3, Field: "sound1", Message: "sound1 is required", Code: ErrSandhiSoundEmpty}
	assert.Equal(t, "[E112] sandhi_rules[3].sound1: sound1 is required", err.Error())

	errs := ValidationErrors{err, err}
	assert.Contains(t, errs.Error(), "2 validation errors")
}
