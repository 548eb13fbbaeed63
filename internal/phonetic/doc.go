// Package phonetic classifies the sounds at the boundary between two Kannada
// words.
//
// The ending sound of a word is decoded from its last Unicode code point
// unless a curated value is known for the word; the starting sound is the
// first code point verbatim. Script tables (matras, independent vowels and
// the virama) live here so the combination stages share one definition.
package phonetic
