package phonetic

import "unicode/utf8"

// EndingLookup supplies hand-curated ending sounds for known words.
type EndingLookup interface {
	// KnownEndingSound returns the curated ending sound for word, if any.
	KnownEndingSound(word string) (string, bool)
}

// Classifier derives the sounds at a word boundary.
// A nil lookup disables the override and always decodes from the script.
type Classifier struct {
	lookup EndingLookup
}

// NewClassifier creates a Classifier with an optional lookup override.
func NewClassifier(lookup EndingLookup) *Classifier {
	return &Classifier{lookup: lookup}
}

// EndingSound returns the sound a word ends in.
//
// A curated ending sound from the lookup takes priority over decoding. This
// lets the tables record exceptions the script rules get wrong.
func (c *Classifier) EndingSound(word string) string {
	if word == "" {
		return ""
	}
	if c != nil && c.lookup != nil {
		if sound, ok := c.lookup.KnownEndingSound(word); ok {
			return sound
		}
	}
	return DecodeEndingSound(word)
}

// StartingSound returns the first character of word verbatim.
func (c *Classifier) StartingSound(word string) string {
	return StartingSound(word)
}

// DecodeEndingSound derives the ending sound from the last code point:
//   - a decoded matra yields its independent vowel
//   - an independent vowel is returned unchanged
//   - the virama is returned as itself (bare consonant ending)
//   - anything else is a consonant carrying the inherent ಅ
func DecodeEndingSound(word string) string {
	r, size := utf8.DecodeLastRuneInString(word)
	if size == 0 {
		return ""
	}
	if vowel, ok := signToVowel[r]; ok {
		return vowel
	}
	if IsIndependentVowel(r) {
		return string(r)
	}
	if string(r) == Virama {
		return Virama
	}
	return DefaultVowel
}

// StartingSound returns the first code point of word, without decoding.
// Consonants are returned as themselves so rules can key on them.
func StartingSound(word string) string {
	return FirstRune(word)
}
