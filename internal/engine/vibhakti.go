package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/roach88/sandhi/internal/phonetic"
)

// Markers with dedicated attachment rules.
const (
	markerDative      = "ಗೆ"
	markerGenitive    = "ದ"
	markerAssociative = "ಜೊತೆ"

	// pluralPrefix gates the vibhakti stage for plural forms not in the table.
	pluralPrefix = "ಗಳ"
	// pluralGroupPrefix selects the plain-append group inside the cascade.
	pluralGroupPrefix = "ಗ"

	glideY = "ಯ"
)

// vibhaktiCase tags one group of the attachment cascade.
type vibhaktiCase int

const (
	casePlural vibhaktiCase = iota
	caseDative
	caseGenitive
	caseAssociative
	caseAgama
	caseFallback
)

var caseNames = [...]string{"plural", "dative", "genitive", "associative", "agama", "fallback"}

func (c vibhaktiCase) String() string {
	return caseNames[c]
}

// vibhaktiRule attaches a marker to a word whose ending sound is known.
type vibhaktiRule struct {
	kind  vibhaktiCase
	match func(marker string) bool
	apply func(word, ending, marker string) string
}

// vibhaktiCascade is ordered; the first matching group wins.
var vibhaktiCascade = []vibhaktiRule{
	{
		kind:  casePlural,
		match: func(m string) bool { return strings.HasPrefix(m, pluralGroupPrefix) && m != markerDative },
		apply: appendMarker,
	},
	{
		kind:  caseDative,
		match: equals(markerDative),
		apply: applyDative,
	},
	{
		kind:  caseGenitive,
		match: equals(markerGenitive),
		apply: func(word, ending, _ string) string { return applyGenitive(word, ending) },
	},
	{
		kind:  caseAssociative,
		match: equals(markerAssociative),
		apply: func(word, ending, _ string) string { return applyGenitive(word, ending) + " " + markerAssociative },
	},
	{
		kind:  caseAgama,
		match: isAgamaMarker,
		apply: applyAgama,
	},
	{
		kind:  caseFallback,
		match: func(string) bool { return true },
		apply: appendMarker,
	},
}

func equals(marker string) func(string) bool {
	return func(m string) bool { return m == marker }
}

// isVibhaktiInput reports whether word2 should be treated as a case marker.
func isVibhaktiInput(isMarker func(string) bool, word2 string) bool {
	return isMarker(word2) || strings.HasPrefix(word2, pluralPrefix)
}

// applyVibhakti attaches marker to word. It never fails.
func applyVibhakti(word, ending, marker string) (string, vibhaktiCase) {
	for _, r := range vibhaktiCascade {
		if r.match(marker) {
			return r.apply(word, ending, marker), r.kind
		}
	}
	return word + marker, caseFallback
}

func appendMarker(word, _, marker string) string {
	return word + marker
}

func applyDative(word, ending, _ string) string {
	switch {
	case isU(ending):
		return word + "ವಿಗೆ"
	case ending == phonetic.DefaultVowel:
		return word + "ಕ್ಕೆ"
	default:
		return word + markerDative
	}
}

func applyGenitive(word, ending string) string {
	switch {
	case isFrontVowel(ending):
		return word + glideY
	case isU(ending):
		return word + "ವಿನ"
	default:
		return word + markerGenitive
	}
}

// Agama sub-rules by ending sound. Markers missing from a table fall through.
var (
	agamaMarkers = map[string]bool{
		"ಅಲ್ಲಿ": true, "ಇಂದ": true, "ಅನ್ನು": true, "ಒಳಗೆ": true, "ಏ": true, "ಓ": true,
	}

	// v-agama after a u ending
	agamaAfterU = map[string]string{
		"ಇಂದ":  "ವಿನಿಂದ",
		"ಅಲ್ಲಿ": "ವಿನಲ್ಲಿ",
		"ಅನ್ನು": "ವನ್ನು",
		"ಒಳಗೆ":  "ವೊಳಗೆ",
	}

	// d-agama (and n for particles) after an inherent a ending
	agamaAfterA = map[string]string{
		"ಅಲ್ಲಿ": "ದಲ್ಲಿ",
		"ಇಂದ":  "ದಿಂದ",
		"ಒಳಗೆ":  "ದೊಳಗೆ",
		"ಅನ್ನು": "ವನ್ನು",
		"ಏ":    "ನೇ",
		"ಓ":    "ನೋ",
	}
)

func isAgamaMarker(m string) bool {
	return agamaMarkers[m]
}

func applyAgama(word, ending, marker string) string {
	switch {
	case isU(ending):
		if suffix, ok := agamaAfterU[marker]; ok {
			return word + suffix
		}
	case ending == phonetic.DefaultVowel:
		if suffix, ok := agamaAfterA[marker]; ok {
			return word + suffix
		}
	case isFrontVowel(ending):
		// y-agama: the marker's leading vowel becomes a sign on ಯ
		first, size := utf8.DecodeRuneInString(marker)
		sign, _ := phonetic.VowelSign(string(first))
		return word + glideY + sign + marker[size:]
	}
	return word + marker
}

func isU(sound string) bool {
	return sound == "ಉ" || sound == "ಊ"
}

func isFrontVowel(sound string) bool {
	switch sound {
	case "ಇ", "ಈ", "ಎ", "ಏ":
		return true
	}
	return false
}
