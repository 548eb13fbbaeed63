// Package store provides SQLite-backed, append-only storage for rule tables.
//
// The data-preparation commands write complete table sets as import batches:
//   - import_batches: one row per import (UUIDv7 id, table fingerprint)
//   - root_words, sandhi_rules, vibhakti_markers, samasa_rules, compounds:
//     rows tagged with the batch that wrote them
//
// # Critical Patterns
//
// Append-only: triggers reject UPDATE and DELETE on every table. A changed
// table set is imported as a new batch; older batches remain readable.
//
// Order preservation: rows are read back ORDER BY seq ASC, which is the order
// they were written in. First-match-wins rule scanning depends on this.
//
// Integrity: loading a batch rebuilds the snapshot and compares its
// fingerprint with the one recorded at import time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
