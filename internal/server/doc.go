// Package server exposes a word combination engine over HTTP.
//
// Endpoints:
//
//	POST /api/join      {"word1": "...", "word2": "..."} -> outcome
//	GET  /api/suggest   ?word=...&limit=N
//	GET  /api/hints     ?word=...
//	GET  /api/stats
//	GET  /healthz
//
// One engine is shared by all handlers; it is immutable, so requests
// need no locking.
package server
