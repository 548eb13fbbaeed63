package store

import (
	"github.com/google/uuid"
)

// IDGenerator generates import batch IDs.
// Implemented by UUIDv7Generator (production) and testutil.FixedIDGenerator (tests).
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 batch IDs.
//
// UUIDv7 embeds a timestamp in the most significant bits, so batch IDs sort
// by creation time as well as by seq.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Batch describes one import of a complete set of rule tables.
type Batch struct {
	Seq           int64  `json:"seq"`
	ID            string `json:"id"`
	Fingerprint   string `json:"fingerprint"`
	Source        string `json:"source,omitempty"`
	TableVersion  string `json:"table_version"`
	EngineVersion string `json:"engine_version"`
}
