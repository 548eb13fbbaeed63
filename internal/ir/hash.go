package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainTables is the domain prefix for table fingerprints.
// Version suffix enables future algorithm migration.
const DomainTables = "sandhi/tables/v1"

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Tables is the full set of records a snapshot is built from, in table order.
type Tables struct {
	RootWords   []RootWord
	SandhiRules []SandhiRule
	Markers     []VibhaktiMarker
	SamasaRules []SamasaRule
	Compounds   []Compound
}

// Fingerprint computes a content-addressed identity for a set of tables.
// Row order is part of the identity because first-match-wins depends on it.
func Fingerprint(t Tables) (string, error) {
	words := make([]any, len(t.RootWords))
	for i, w := range t.RootWords {
		words[i] = []string{w.Text, w.Meaning, string(w.PartOfSpeech), w.EndingSound, fmt.Sprint(w.Combinable)}
	}
	sandhi := make([]any, len(t.SandhiRules))
	for i, r := range t.SandhiRules {
		sandhi[i] = []string{r.ID, r.Sound1, r.Sound2, r.Result, r.ExampleWord1, r.ExampleWord2, r.ExampleCombined}
	}
	markers := make([]any, len(t.Markers))
	for i, m := range t.Markers {
		markers[i] = []string{m.Marker, m.Meaning, string(m.CaseType), string(m.Logic)}
	}
	samasa := make([]any, len(t.SamasaRules))
	for i, r := range t.SamasaRules {
		samasa[i] = []string{r.Name, r.SuffixToDrop, r.ReplacementSound, r.ExampleInput, r.ExampleRoot}
	}
	compounds := make([]any, len(t.Compounds))
	for i, c := range t.Compounds {
		compounds[i] = []string{c.Word1, c.Word2, c.Combined, c.Frequency}
	}

	canonical, err := MarshalCanonical(map[string]any{
		"version":      TableVersion,
		"root_words":   words,
		"sandhi_rules": sandhi,
		"markers":      markers,
		"samasa_rules": samasa,
		"compounds":    compounds,
	})
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainTables, canonical), nil
}
