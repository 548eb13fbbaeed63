package phonetic

import "unicode/utf8"

// Kannada Unicode block: U+0C80 - U+0CFF.
const (
	// Virama (halant) suppresses a consonant's inherent vowel.
	Virama = "್"

	// DefaultVowel is the inherent vowel carried by a bare consonant letter.
	DefaultVowel = "ಅ"

	firstIndependentVowel = '\u0C85' // ಅ
	lastIndependentVowel  = '\u0C94' // ಔ
)

// signToVowel maps dependent vowel signs (matras) to their independent vowels.
// Only these nine signs are decoded; other signs fall through to DefaultVowel.
var signToVowel = map[rune]string{
	'ಾ': "ಆ",
	'ಿ': "ಇ",
	'ೀ': "ಈ",
	'ು': "ಉ",
	'ೂ': "ಊ",
	'ೆ': "ಎ",
	'ೇ': "ಏ",
	'ೊ': "ಒ",
	'ೋ': "ಓ",
}

// vowelToSign maps independent vowels to the dependent sign that replaces them
// after a consonant. ಅ maps to "" because it is the inherent vowel.
var vowelToSign = map[string]string{
	"ಅ": "",
	"ಆ": "ಾ",
	"ಇ": "ಿ",
	"ಈ": "ೀ",
	"ಉ": "ು",
	"ಊ": "ೂ",
	"ಋ": "ೃ",
	"ೠ": "ೄ",
	"ಎ": "ೆ",
	"ಏ": "ೇ",
	"ಐ": "ೈ",
	"ಒ": "ೊ",
	"ಓ": "ೋ",
	"ಔ": "ೌ",
}

// IsIndependentVowel reports whether r lies in the independent vowel range ಅ..ಔ.
func IsIndependentVowel(r rune) bool {
	return r >= firstIndependentVowel && r <= lastIndependentVowel
}

// IsTrailingSign reports whether r is one of the decoded matras or the virama.
func IsTrailingSign(r rune) bool {
	if string(r) == Virama {
		return true
	}
	_, ok := signToVowel[r]
	return ok
}

// VowelSign returns the dependent sign for an independent vowel.
// ok is false when s is not an independent vowel.
func VowelSign(s string) (sign string, ok bool) {
	sign, ok = vowelToSign[s]
	return sign, ok
}

// TrimTrailingSign removes a final matra or virama from word, if present.
func TrimTrailingSign(word string) string {
	r, size := utf8.DecodeLastRuneInString(word)
	if size > 0 && IsTrailingSign(r) {
		return word[:len(word)-size]
	}
	return word
}

// TrimLeadingVowel removes a leading independent vowel from word, if present.
func TrimLeadingVowel(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size > 0 && IsIndependentVowel(r) {
		return word[size:]
	}
	return word
}

// FirstRune returns the first code point of s as a string, or "" if s is empty.
func FirstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
