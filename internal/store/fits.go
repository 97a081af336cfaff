package store

import (
	"context"
	"database/sql"
	"errors"
)

// AppendFitRecord inserts a new fit record and returns it with its assigned id.
// Prior records are never touched.
func (s *Store) AppendFitRecord(ctx context.Context, r2, mae, mse float64) (FitRecord, error) {
	const op = "append fit record"

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO fit_records (r2, mae, mse) VALUES (?, ?, ?)`, r2, mae, mse)
	if err != nil {
		return FitRecord{}, persistErr(op, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return FitRecord{}, persistErr(op, err)
	}

	return FitRecord{ID: id, R2: r2, MAE: mae, MSE: mse}, nil
}

// LatestFitRecord returns the fit record with the highest id.
// ok is false when no fit has ever been recorded; that is not an error.
func (s *Store) LatestFitRecord(ctx context.Context) (rec FitRecord, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT id, r2, mae, mse
		FROM fit_records
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&rec.ID, &rec.R2, &rec.MAE, &rec.MSE)
	if errors.Is(err, sql.ErrNoRows) {
		return FitRecord{}, false, nil
	}
	if err != nil {
		return FitRecord{}, false, persistErr("read latest fit record", err)
	}
	return rec, true, nil
}

// FitHistory returns every fit record ordered by ascending id.
// Returns an empty slice (not nil) if none exist.
func (s *Store) FitHistory(ctx context.Context) ([]FitRecord, error) {
	const op = "read fit history"

	rows, err := s.db.QueryContext(ctx, `SELECT id, r2, mae, mse FROM fit_records ORDER BY id ASC`)
	if err != nil {
		return nil, persistErr(op, err)
	}
	defer rows.Close()

	records := []FitRecord{}
	for rows.Next() {
		var rec FitRecord
		if err := rows.Scan(&rec.ID, &rec.R2, &rec.MAE, &rec.MSE); err != nil {
			return nil, persistErr(op, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, persistErr(op, err)
	}

	return records, nil
}
