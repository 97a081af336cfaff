package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	for _, table := range []string{"samples", "fit_records"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found after idempotent opens: %v", table, err)
		}
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/test.db")
	require.Error(t, err)
	assert.True(t, IsPersistenceError(err), "expected PersistenceError, got %T", err)
}

func TestOpenMemory_Isolated(t *testing.T) {
	ctx := context.Background()

	a, err := OpenMemory()
	require.NoError(t, err)
	defer a.Close()

	b, err := OpenMemory()
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.AppendSamples(ctx, entries(1, 2)))

	n, err := b.SampleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestEnsureSchema_NoOpWhenPresent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendSamples(ctx, entries(3)))
	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.EnsureSchema(ctx))

	values, err := s.AllSampleValues(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, values)
}

func TestOperationsAfterClose_ReturnPersistenceError(t *testing.T) {
	s, err := OpenMemory()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.AllSampleValues(context.Background())
	require.Error(t, err)

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "read sample values", pe.Op)
}

// Pragma tests

func TestPragma_JournalMode(t *testing.T) {
	s := createTestStore(t)
	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
}

func TestPragma_Synchronous(t *testing.T) {
	s := createTestStore(t)
	// NORMAL = 1
	if err := s.verifyPragma("synchronous", "1"); err != nil {
		t.Error(err)
	}
}

func TestPragma_BusyTimeout(t *testing.T) {
	s := createTestStore(t)
	if err := s.verifyPragma("busy_timeout", "5000"); err != nil {
		t.Error(err)
	}
}

func TestPragma_UserVersion(t *testing.T) {
	s := createTestStore(t)
	if err := s.verifyPragma("user_version", "1"); err != nil {
		t.Error(err)
	}
}

// Schema table tests

func TestSchema_SamplesTable(t *testing.T) {
	s := createTestStore(t)
	assert.Equal(t, []string{"id", "value", "note"}, getTableColumns(t, s.db, "samples"))
}

func TestSchema_FitRecordsTable(t *testing.T) {
	s := createTestStore(t)
	assert.Equal(t, []string{"id", "r2", "mae", "mse"}, getTableColumns(t, s.db, "fit_records"))
}

// Migration tests

func TestMigrateToV1_ImportsLegacyTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	raw, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = raw.Exec(`
		CREATE TABLE data (id INTEGER PRIMARY KEY AUTOINCREMENT, value REAL, note TEXT);
		CREATE TABLE metrics (id INTEGER PRIMARY KEY AUTOINCREMENT, r2 REAL, mae REAL, mse REAL);
		INSERT INTO data (value, note) VALUES (1.5, 'a'), (2.5, NULL), (NULL, 'skipped');
		INSERT INTO metrics (r2, mae, mse) VALUES (0.5, 1.0, 2.0);
	`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	samples, err := s.ReadSamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Sample{
		{ID: 1, Value: 1.5, Note: "a"},
		{ID: 2, Value: 2.5, Note: ""},
	}, samples)

	rec, ok, err := s.LatestFitRecord(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, FitRecord{ID: 1, R2: 0.5, MAE: 1.0, MSE: 2.0}, rec)

	// New rows continue after the imported ids.
	require.NoError(t, s.AppendSamples(ctx, entries(9)))
	samples, err = s.ReadSamples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Greater(t, samples[2].ID, int64(2))
}

func TestMigrateToV1_RunsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	raw, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = raw.Exec(`
		CREATE TABLE data (id INTEGER PRIMARY KEY AUTOINCREMENT, value REAL, note TEXT);
		INSERT INTO data (value, note) VALUES (4, 'x');
	`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	for i := 0; i < 2; i++ {
		s, err := Open(path)
		require.NoError(t, err)
		s.Close()
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.SampleCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func getTableColumns(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()

	rows, err := db.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		t.Fatalf("failed to get table info for %q: %v", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			t.Fatalf("failed to scan column info: %v", err)
		}
		columns = append(columns, name)
	}
	return columns
}
