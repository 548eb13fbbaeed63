package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/rules"
)

const batchColumns = `seq, id, fingerprint, source, table_version, engine_version`

// Batches returns all import batches, oldest first.
func (s *Store) Batches(ctx context.Context) ([]Batch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+batchColumns+`
		FROM import_batches
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// LatestBatch returns the most recent import batch. ok is false if the
// store is empty.
func (s *Store) LatestBatch(ctx context.Context) (batch Batch, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+batchColumns+`
		FROM import_batches
		ORDER BY seq DESC
		LIMIT 1
	`)
	batch, err = scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Batch{}, false, nil
	}
	if err != nil {
		return Batch{}, false, err
	}
	return batch, true, nil
}

// GetBatch returns the batch with the given ID.
func (s *Store) GetBatch(ctx context.Context, id string) (Batch, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+batchColumns+`
		FROM import_batches
		WHERE id = ?
	`, id)
	batch, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Batch{}, false, nil
	}
	if err != nil {
		return Batch{}, false, err
	}
	return batch, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(r rowScanner) (Batch, error) {
	var b Batch
	err := r.Scan(&b.Seq, &b.ID, &b.Fingerprint, &b.Source, &b.TableVersion, &b.EngineVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return Batch{}, err
	}
	if err != nil {
		return Batch{}, fmt.Errorf("scan batch: %w", err)
	}
	return b, nil
}

// Load builds a Snapshot from the latest batch.
func (s *Store) Load(ctx context.Context) (*rules.Snapshot, Batch, error) {
	batch, ok, err := s.LatestBatch(ctx)
	if err != nil {
		return nil, Batch{}, storeError("read latest batch", err)
	}
	if !ok {
		return nil, Batch{}, &rules.LoadError{
			Code:    rules.ErrCodeNoFiles,
			Message: "store has no imported tables",
			Source:  s.path,
		}
	}
	snap, err := s.loadBatch(ctx, batch)
	return snap, batch, err
}

// LoadBatch builds a Snapshot from the batch with the given ID.
func (s *Store) LoadBatch(ctx context.Context, id string) (*rules.Snapshot, error) {
	batch, ok, err := s.GetBatch(ctx, id)
	if err != nil {
		return nil, storeError("read batch", err)
	}
	if !ok {
		return nil, &rules.LoadError{
			Code:    rules.ErrCodeNotFound,
			Message: fmt.Sprintf("batch %s not found", id),
			Source:  s.path,
		}
	}
	return s.loadBatch(ctx, batch)
}

// loadBatch rebuilds the snapshot and checks it against the recorded fingerprint.
func (s *Store) loadBatch(ctx context.Context, batch Batch) (*rules.Snapshot, error) {
	t, err := s.ReadTables(ctx, batch.ID)
	if err != nil {
		return nil, storeError("read tables", err)
	}

	snap, err := rules.NewBuilder().AddTables(t).Build()
	if err != nil {
		return nil, err
	}
	if snap.Fingerprint() != batch.Fingerprint {
		return nil, &rules.LoadError{
			Code:    rules.ErrCodeStoreFailed,
			Message: fmt.Sprintf("batch %s fingerprint mismatch: recorded %s, rebuilt %s", batch.ID, batch.Fingerprint, snap.Fingerprint()),
			Source:  s.path,
		}
	}
	return snap, nil
}

// ReadTables returns the rows of one batch in insertion order.
func (s *Store) ReadTables(ctx context.Context, batchID string) (ir.Tables, error) {
	var t ir.Tables
	var err error

	if t.RootWords, err = queryRows(ctx, s.db, `
		SELECT word, meaning, type, last_sound, can_combine
		FROM root_words WHERE batch_id = ? ORDER BY seq ASC
	`, batchID, func(r rowScanner) (ir.RootWord, error) {
		var w ir.RootWord
		err := r.Scan(&w.Text, &w.Meaning, &w.PartOfSpeech, &w.EndingSound, &w.Combinable)
		return w, err
	}); err != nil {
		return t, fmt.Errorf("root words: %w", err)
	}

	if t.SandhiRules, err = queryRows(ctx, s.db, `
		SELECT rule_number, sound1, sound2, result, example_word1, example_word2, combined_result
		FROM sandhi_rules WHERE batch_id = ? ORDER BY seq ASC
	`, batchID, func(r rowScanner) (ir.SandhiRule, error) {
		var sr ir.SandhiRule
		err := r.Scan(&sr.ID, &sr.Sound1, &sr.Sound2, &sr.Result, &sr.ExampleWord1, &sr.ExampleWord2, &sr.ExampleCombined)
		return sr, err
	}); err != nil {
		return t, fmt.Errorf("sandhi rules: %w", err)
	}

	if t.Markers, err = queryRows(ctx, s.db, `
		SELECT marker, meaning, type, logic_type
		FROM vibhakti_markers WHERE batch_id = ? ORDER BY seq ASC
	`, batchID, func(r rowScanner) (ir.VibhaktiMarker, error) {
		var m ir.VibhaktiMarker
		err := r.Scan(&m.Marker, &m.Meaning, &m.CaseType, &m.Logic)
		return m, err
	}); err != nil {
		return t, fmt.Errorf("vibhakti markers: %w", err)
	}

	if t.SamasaRules, err = queryRows(ctx, s.db, `
		SELECT rule_name, suffix_to_drop, replacement_sound, example_input, example_root
		FROM samasa_rules WHERE batch_id = ? ORDER BY seq ASC
	`, batchID, func(r rowScanner) (ir.SamasaRule, error) {
		var sr ir.SamasaRule
		err := r.Scan(&sr.Name, &sr.SuffixToDrop, &sr.ReplacementSound, &sr.ExampleInput, &sr.ExampleRoot)
		return sr, err
	}); err != nil {
		return t, fmt.Errorf("samasa rules: %w", err)
	}

	if t.Compounds, err = queryRows(ctx, s.db, `
		SELECT word1, word2, combined, frequency
		FROM compounds WHERE batch_id = ? ORDER BY seq ASC
	`, batchID, func(r rowScanner) (ir.Compound, error) {
		var c ir.Compound
		err := r.Scan(&c.Word1, &c.Word2, &c.Combined, &c.Frequency)
		return c, err
	}); err != nil {
		return t, fmt.Errorf("compounds: %w", err)
	}

	return t, nil
}

func queryRows[T any](ctx context.Context, db *sql.DB, query, batchID string, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func storeError(msg string, err error) error {
	return &rules.LoadError{Code: rules.ErrCodeStoreFailed, Message: msg, Err: err}
}
