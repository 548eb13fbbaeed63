package engine

import (
	"fmt"

	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/phonetic"
	"github.com/roach88/sandhi/internal/rules"
)

// glideSigns is the sign table used after an inserted glide.
// Vowels outside it contribute no sign.
var glideSigns = map[string]string{
	"ಅ": "",
	"ಆ": "ಾ",
	"ಇ": "ಿ",
	"ಈ": "ೀ",
	"ಉ": "ು",
	"ಊ": "ೂ",
	"ಎ": "ೆ",
	"ಏ": "ೇ",
}

// Glide consonants that turn a rule into an insertion (agama) rule.
var glideResults = map[string]bool{"ಯ": true, "ವ": true}

// Combiner applies exact-pair and phonetic-class sandhi rules.
type Combiner struct {
	snap       *rules.Snapshot
	classifier *phonetic.Classifier
}

// NewCombiner creates a Combiner over the sandhi rules of snap.
func NewCombiner(snap *rules.Snapshot, classifier *phonetic.Classifier) *Combiner {
	return &Combiner{snap: snap, classifier: classifier}
}

// DirectMatch returns the first rule whose example pair equals (word1, word2).
// Rules without an example pair never match.
func (c *Combiner) DirectMatch(word1, word2 string) (ir.SandhiRule, bool) {
	var found ir.SandhiRule
	var ok bool
	c.snap.EachSandhiRule(func(r ir.SandhiRule) bool {
		if r.ExampleWord1 == "" || r.ExampleWord2 == "" {
			return true
		}
		if r.ExampleWord1 == word1 && r.ExampleWord2 == word2 {
			found, ok = r, true
			return false
		}
		return true
	})
	return found, ok
}

// Match returns the first rule keyed on the boundary sounds of the two words,
// together with those sounds.
func (c *Combiner) Match(word1, word2 string) (rule ir.SandhiRule, sound1, sound2 string, ok bool) {
	sound1 = c.classifier.EndingSound(word1)
	sound2 = c.classifier.StartingSound(word2)
	if sound1 == "" || sound2 == "" {
		return rule, sound1, sound2, false
	}

	c.snap.EachSandhiRule(func(r ir.SandhiRule) bool {
		if r.Sound1 == sound1 && r.Sound2 == sound2 {
			rule, ok = r, true
			return false
		}
		return true
	})
	return rule, sound1, sound2, ok
}

// Apply builds the joined word for a matched rule.
func Apply(rule ir.SandhiRule, word1, word2, sound2 string) string {
	if glideResults[rule.Result] {
		// Insertion: word1 + glide + sign of word2's vowel + rest of word2.
		return word1 + rule.Result + glideSigns[sound2] + phonetic.TrimLeadingVowel(word2)
	}

	// Merge: the boundary vowels collapse into the rule's result.
	mid := rule.Result
	if sign, ok := phonetic.VowelSign(rule.Result); ok {
		mid = sign
	}
	return phonetic.TrimTrailingSign(word1) + mid + phonetic.TrimLeadingVowel(word2)
}

func directRuleText(rule ir.SandhiRule) string {
	return fmt.Sprintf("Direct Match (Rule %s)", rule.ID)
}

func phoneticRuleText(sound1, sound2, result string) string {
	return fmt.Sprintf("Sandhi Rule: %s+%s=%s", sound1, sound2, result)
}
