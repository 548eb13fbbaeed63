// Package data embeds the bundled rule tables.
//
// The CSV files use the column layout of the data-preparation tooling:
// root_words.csv, sandhi_rules.csv, vibhakti_rules.csv, samasa_rules.csv and
// the optional compound_words.csv. Row order is significant.
package data

import "embed"

// Tables holds the bundled CSV tables at the root of the filesystem.
//
//go:embed *.csv
var Tables embed.FS
