package ir

// Status is the severity of a combination outcome.
type Status string

const (
	// StatusSuccess means a rule fired and Rule explains which one.
	StatusSuccess Status = "success"
	// StatusWarning means no rule matched and the words were concatenated.
	StatusWarning Status = "warning"
	// StatusError means an input word was rejected by strict validation.
	StatusError Status = "error"
)

// Stage names the decision stage that produced an outcome.
type Stage string

const (
	StageVibhakti Stage = "vibhakti"
	StageDirect   Stage = "direct"
	StagePhonetic Stage = "phonetic"
	StageFallback Stage = "fallback"
	StageInvalid  Stage = "invalid"
)

// Outcome is the result of joining two words.
// Result is empty only for StatusError outcomes or when both inputs are empty.
type Outcome struct {
	Result      string       `json:"result"`
	Status      Status       `json:"status"`
	Rule        string       `json:"rule,omitempty"`
	Message     string       `json:"msg,omitempty"`
	Stage       Stage        `json:"stage"`
	Samasa      string       `json:"samasa,omitempty"` // samasa rule applied to word1
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// OK reports whether a rule fired.
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}
