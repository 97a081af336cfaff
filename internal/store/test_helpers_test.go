package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new file-backed store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func entries(values ...float64) []SampleEntry {
	out := make([]SampleEntry, len(values))
	for i, v := range values {
		out[i] = SampleEntry{Value: v, Note: "n"}
	}
	return out
}
