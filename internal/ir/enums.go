package ir

import "fmt"

// PartOfSpeech classifies a root word.
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "noun"
	Pronoun   PartOfSpeech = "pronoun"
	Verb      PartOfSpeech = "verb"
	Adjective PartOfSpeech = "adjective"
	Adverb    PartOfSpeech = "adverb"
	Prefix    PartOfSpeech = "prefix"
	Particle  PartOfSpeech = "particle"
	Other     PartOfSpeech = "other"
)

// ValidPartsOfSpeech defines allowed part-of-speech values.
var ValidPartsOfSpeech = map[PartOfSpeech]bool{
	Noun: true, Pronoun: true, Verb: true, Adjective: true,
	Adverb: true, Prefix: true, Particle: true, Other: true,
}

// CaseType is the grammatical case a vibhakti marker expresses.
type CaseType string

const (
	CaseDative       CaseType = "dative"
	CaseLocative     CaseType = "locative"
	CaseInstrumental CaseType = "instrumental"
	CaseAccusative   CaseType = "accusative"
	CaseGenitive     CaseType = "genitive"
	CaseNominative   CaseType = "nominative"
	CaseAssociative  CaseType = "associative"
	CaseParticle     CaseType = "particle"
)

// ValidCaseTypes defines allowed case types.
var ValidCaseTypes = map[CaseType]bool{
	CaseDative: true, CaseLocative: true, CaseInstrumental: true, CaseAccusative: true,
	CaseGenitive: true, CaseNominative: true, CaseAssociative: true, CaseParticle: true,
}

// AttachmentLogic records how a marker is attached in the source table.
// The engine dispatches on marker identity; this field is descriptive.
type AttachmentLogic string

const (
	LogicSuffix           AttachmentLogic = "suffix"
	LogicAgamaSandhi      AttachmentLogic = "agama_sandhi"
	LogicSimpleAppend     AttachmentLogic = "simple_append"
	LogicRequiresGenitive AttachmentLogic = "requires_genitive"
)

// ValidAttachmentLogics defines allowed attachment logic values.
var ValidAttachmentLogics = map[AttachmentLogic]bool{
	LogicSuffix: true, LogicAgamaSandhi: true, LogicSimpleAppend: true, LogicRequiresGenitive: true,
}

// ParsePartOfSpeech converts a table value into a PartOfSpeech.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	p := PartOfSpeech(s)
	if !ValidPartsOfSpeech[p] {
		return "", fmt.Errorf("invalid part of speech %q", s)
	}
	return p, nil
}

// ParseCaseType converts a table value into a CaseType.
func ParseCaseType(s string) (CaseType, error) {
	c := CaseType(s)
	if !ValidCaseTypes[c] {
		return "", fmt.Errorf("invalid case type %q", s)
	}
	return c, nil
}

// ParseAttachmentLogic converts a table value into an AttachmentLogic.
func ParseAttachmentLogic(s string) (AttachmentLogic, error) {
	l := AttachmentLogic(s)
	if !ValidAttachmentLogics[l] {
		return "", fmt.Errorf("invalid attachment logic %q", s)
	}
	return l, nil
}
