package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/rules"
)

// Import appends every table of snap as a new batch.
//
// Rows are written in table order inside one transaction, so a batch is
// either complete or absent. If the latest batch already carries the same
// fingerprint nothing is written and that batch is returned with
// created=false, making repeated imports of unchanged tables idempotent.
func (s *Store) Import(ctx context.Context, snap *rules.Snapshot, source string) (batch Batch, created bool, err error) {
	latest, ok, err := s.LatestBatch(ctx)
	if err != nil {
		return Batch{}, false, fmt.Errorf("import: %w", err)
	}
	if ok && latest.Fingerprint == snap.Fingerprint() {
		return latest, false, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Batch{}, false, fmt.Errorf("import: begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	batch = Batch{
		ID:            s.ids.Generate(),
		Fingerprint:   snap.Fingerprint(),
		Source:        source,
		TableVersion:  ir.TableVersion,
		EngineVersion: ir.EngineVersion,
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO import_batches (id, fingerprint, source, table_version, engine_version)
		VALUES (?, ?, ?, ?, ?)
	`, batch.ID, batch.Fingerprint, batch.Source, batch.TableVersion, batch.EngineVersion)
	if err != nil {
		return Batch{}, false, fmt.Errorf("import: write batch: %w", err)
	}
	if batch.Seq, err = res.LastInsertId(); err != nil {
		return Batch{}, false, fmt.Errorf("import: batch seq: %w", err)
	}

	if err = writeTables(ctx, tx, batch.ID, snap.Tables()); err != nil {
		return Batch{}, false, fmt.Errorf("import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return Batch{}, false, fmt.Errorf("import: commit: %w", err)
	}
	return batch, true, nil
}

func writeTables(ctx context.Context, tx *sql.Tx, batchID string, t ir.Tables) error {
	for _, w := range t.RootWords {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO root_words (batch_id, word, meaning, type, last_sound, can_combine)
			VALUES (?, ?, ?, ?, ?, ?)
		`, batchID, w.Text, w.Meaning, string(w.PartOfSpeech), w.EndingSound, w.Combinable); err != nil {
			return fmt.Errorf("write root word %q: %w", w.Text, err)
		}
	}

	for _, r := range t.SandhiRules {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sandhi_rules
			(batch_id, rule_number, sound1, sound2, result, example_word1, example_word2, combined_result)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, batchID, r.ID, r.Sound1, r.Sound2, r.Result, r.ExampleWord1, r.ExampleWord2, r.ExampleCombined); err != nil {
			return fmt.Errorf("write sandhi rule %q: %w", r.ID, err)
		}
	}

	for _, m := range t.Markers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO vibhakti_markers (batch_id, marker, meaning, type, logic_type)
			VALUES (?, ?, ?, ?, ?)
		`, batchID, m.Marker, m.Meaning, string(m.CaseType), string(m.Logic)); err != nil {
			return fmt.Errorf("write marker %q: %w", m.Marker, err)
		}
	}

	for _, r := range t.SamasaRules {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO samasa_rules
			(batch_id, rule_name, suffix_to_drop, replacement_sound, example_input, example_root)
			VALUES (?, ?, ?, ?, ?, ?)
		`, batchID, r.Name, r.SuffixToDrop, r.ReplacementSound, r.ExampleInput, r.ExampleRoot); err != nil {
			return fmt.Errorf("write samasa rule %q: %w", r.Name, err)
		}
	}

	for _, c := range t.Compounds {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO compounds (batch_id, word1, word2, combined, frequency)
			VALUES (?, ?, ?, ?, ?)
		`, batchID, c.Word1, c.Word2, c.Combined, c.Frequency); err != nil {
			return fmt.Errorf("write compound %q: %w", c.Combined, err)
		}
	}

	return nil
}
