package ir

// RootWord is a dictionary entry keyed by its text.
type RootWord struct {
	Text         string       `json:"word"`
	Meaning      string       `json:"meaning"`
	PartOfSpeech PartOfSpeech `json:"type"`
	EndingSound  string       `json:"last_sound,omitempty"` // "" = unset, decode from script
	Combinable   bool         `json:"can_combine"`
}

// HasEndingSound reports whether the entry carries a hand-curated ending sound.
func (w RootWord) HasEndingSound() bool {
	return w.EndingSound != ""
}

// SandhiRule is a phonetic joining rule. Rules are kept in table order.
type SandhiRule struct {
	ID              string `json:"rule_number"`
	Sound1          string `json:"sound1"`
	Sound2          string `json:"sound2"`
	Result          string `json:"result"`
	ExampleWord1    string `json:"example_word1"`
	ExampleWord2    string `json:"example_word2"`
	ExampleCombined string `json:"combined_result"`
}

// VibhaktiMarker is a case-marking suffix keyed by its text.
type VibhaktiMarker struct {
	Marker   string          `json:"marker"`
	Meaning  string          `json:"meaning"`
	CaseType CaseType        `json:"type"`
	Logic    AttachmentLogic `json:"logic_type"`
}

// SamasaRule strips an embedded case suffix from the first word of a compound.
type SamasaRule struct {
	Name             string `json:"rule_name"`
	SuffixToDrop     string `json:"suffix_to_drop"`
	ReplacementSound string `json:"replacement_sound"`
	ExampleInput     string `json:"example_input"`
	ExampleRoot      string `json:"example_root"`
}

// Compound is a known word pair used for input hints.
type Compound struct {
	Word1     string `json:"word1"`
	Word2     string `json:"word2"`
	Combined  string `json:"combined"`
	Frequency string `json:"frequency,omitempty"`
}

// Hint is a suggested second word for a given first word.
type Hint struct {
	NextWord string `json:"next_word"`
	Result   string `json:"result"`
}

// Suggestion is an approximate vocabulary match with an integer score (0-100).
type Suggestion struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Stats summarises the sizes of the loaded tables.
type Stats struct {
	RootWords   int    `json:"root_words"`
	SandhiRules int    `json:"sandhi_rules"`
	SamasaRules int    `json:"samasa_rules"`
	Markers     int    `json:"vibhakti_markers"`
	Compounds   int    `json:"compounds"`
	Fingerprint string `json:"fingerprint"`
}
