package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - Initial schema (pre-migration)
// 1 - Imported rows from the legacy data/metrics tables when present
const currentSchemaVersion = 1

// memoryDSN keeps a private in-memory database alive for the lifetime of the
// single pooled connection.
const memoryDSN = ":memory:"

// Store provides durable storage for samples and fit records.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for schema and migration diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// This function is idempotent - safe to call multiple times.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, persistErr("open database", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, persistErr("connect to database", err)
	}

	// SQLite only supports one writer at a time, and an in-memory database
	// exists only on the connection that created it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, persistErr("apply pragmas", err)
	}

	if err := s.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// OpenMemory opens a private in-memory store. Data is lost on Close.
func OpenMemory(opts ...Option) (*Store, error) {
	return Open(memoryDSN, opts...)
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// EnsureSchema creates the samples and fit_records tables if absent and runs
// pending migrations. It is a no-op on an up-to-date database.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return persistErr("ensure schema", err)
	}

	if err := s.runMigrations(ctx); err != nil {
		return persistErr("ensure schema", err)
	}

	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// runMigrations applies incremental schema migrations based on user_version.
func (s *Store) runMigrations(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version >= currentSchemaVersion {
		return nil
	}

	if version < 1 {
		s.logger.Debug("migrating schema", "from", version, "to", 1)
		if err := s.migrateToV1(ctx); err != nil {
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// migrateToV1 copies rows out of the legacy data and metrics tables, which
// earlier releases used for samples and fit records. Ids are preserved so
// ordering survives. The legacy tables are left in place.
func (s *Store) migrateToV1(ctx context.Context) error {
	legacy := []struct {
		table string
		copy  string
	}{
		{
			table: "data",
			copy: `INSERT OR IGNORE INTO samples (id, value, note)
				SELECT id, value, COALESCE(note, '') FROM data WHERE value IS NOT NULL`,
		},
		{
			table: "metrics",
			copy: `INSERT OR IGNORE INTO fit_records (id, r2, mae, mse)
				SELECT id, r2, mae, mse FROM metrics
				WHERE r2 IS NOT NULL AND mae IS NOT NULL AND mse IS NOT NULL`,
		},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrate to v1: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, l := range legacy {
		var n int
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", l.table,
		).Scan(&n)
		if err != nil {
			return fmt.Errorf("migrate to v1: probe %s: %w", l.table, err)
		}
		if n == 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, l.copy); err != nil {
			return fmt.Errorf("migrate to v1: copy %s: %w", l.table, err)
		}
		s.logger.Debug("imported legacy table", "table", l.table)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate to v1: commit: %w", err)
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
