package store

import (
	"context"

	"golang.org/x/text/unicode/norm"
)

// AppendSamples inserts each entry as a new sample in a single transaction.
// Either every entry is stored or none is. Duplicate entries are stored as
// distinct rows.
//
// Notes are NFC-normalized so visually identical text compares equal.
func (s *Store) AppendSamples(ctx context.Context, entries []SampleEntry) error {
	const op = "append samples"
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return persistErr(op, err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO samples (value, note) VALUES (?, ?)`)
	if err != nil {
		return persistErr(op, err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Value, norm.NFC.String(e.Note)); err != nil {
			return persistErr(op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return persistErr(op, err)
	}
	return nil
}

// AllSampleValues returns every sample value ordered by ascending id.
// Returns an empty slice (not nil) if no samples exist.
func (s *Store) AllSampleValues(ctx context.Context) ([]float64, error) {
	const op = "read sample values"

	rows, err := s.db.QueryContext(ctx, `SELECT value FROM samples ORDER BY id ASC`)
	if err != nil {
		return nil, persistErr(op, err)
	}
	defer rows.Close()

	values := []float64{}
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, persistErr(op, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, persistErr(op, err)
	}

	return values, nil
}

// ReadSamples returns every stored sample ordered by ascending id.
func (s *Store) ReadSamples(ctx context.Context) ([]Sample, error) {
	const op = "read samples"

	rows, err := s.db.QueryContext(ctx, `SELECT id, value, note FROM samples ORDER BY id ASC`)
	if err != nil {
		return nil, persistErr(op, err)
	}
	defer rows.Close()

	samples := []Sample{}
	for rows.Next() {
		var smp Sample
		if err := rows.Scan(&smp.ID, &smp.Value, &smp.Note); err != nil {
			return nil, persistErr(op, err)
		}
		samples = append(samples, smp)
	}

	if err := rows.Err(); err != nil {
		return nil, persistErr(op, err)
	}

	return samples, nil
}

// SampleCount returns the number of stored samples.
func (s *Store) SampleCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM samples`).Scan(&n); err != nil {
		return 0, persistErr("count samples", err)
	}
	return n, nil
}
