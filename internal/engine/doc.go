// Package engine joins two Kannada words using the rules in a Snapshot.
//
// JoinWords runs an ordered decision procedure and stops at the first stage
// that produces a result:
//
//  1. Vibhakti: word2 is a case marker (or a plural ಗಳ form); word1 is
//     rewritten by the marker cascade in vibhakti.go.
//  2. Samasa: an embedded case suffix is stripped from word1 (samasa.go).
//     This never terminates the procedure; it only changes word1 for the
//     stages that follow.
//  3. Direct: (word1, word2) equals the example pair of a sandhi rule; the
//     recorded combined form is returned verbatim.
//  4. Phonetic: the ending sound of word1 and the starting sound of word2
//     select the first sandhi rule with that sound pair (sandhi.go).
//  5. Fallback: plain concatenation with a warning.
//
// The procedure never fails. Unknown words degrade to the fallback unless
// strict validation is enabled, in which case they produce an error outcome.
//
// # Determinism
//
// Rule tables are scanned in table order and scanning stops at the first
// match, never the best one. Given the same Snapshot, JoinWords is a pure
// function of its inputs.
//
// # Concurrency
//
// An Engine is immutable after New and may be shared by any number of
// goroutines.
package engine
