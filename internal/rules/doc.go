// Package rules provides the read-only rule store for the sandhi engine.
//
// A Snapshot holds five tables:
//   - Root words: keyed by text, with an optional curated ending sound
//   - Sandhi rules: ordered, first structural match wins
//   - Vibhakti markers: keyed by marker text
//   - Samasa rules: ordered, first suffix match wins
//   - Compounds: ordered word pairs used for input hints
//
// # Lifecycle
//
// Tables are read from CSV files (LoadCSV, LoadCSVDir), CUE files validated
// against the embedded schema (LoadCUEDir, LoadCUESource), or assembled by
// hand with a Builder. Build validates every row and either fails with all
// problems found or returns a Snapshot. A Snapshot is never mutated after
// Build, so one instance can be shared by any number of goroutines.
//
// # Ordering
//
// Row order inside the sandhi and samasa tables is semantically significant
// and is preserved exactly as read. Snapshot accessors return copies.
package rules
