package ir

// Version constants for table schema and engine.
const (
	// TableVersion is the rule-table schema version.
	TableVersion = "1"

	// EngineVersion is the sandhi engine version.
	EngineVersion = "0.3.0"
)
