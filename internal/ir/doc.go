// Package ir provides the core record and outcome types for the sandhi engine.
//
// This package contains type definitions and serialization helpers only. All
// other internal packages import ir; ir imports nothing internal. This keeps
// the table records the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Sounds are strings holding a single Kannada code point (or "" for unset)
//   - Tables are ordered slices where order is significant (first match wins)
//   - NO float types in records; similarity scores are integer percentages
//   - All JSON tags use snake_case
package ir
