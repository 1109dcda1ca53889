package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/jobtrack/internal/domain"
)

// createTestStore creates a new temp-file store for testing.
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

// createTestDraft creates a draft with every field populated.
func createTestDraft(description, status string) domain.Draft {
	return domain.Draft{
		Description: description,
		Date:        "2024-01-15",
		Status:      status,
		URL:         "https://jobs.example.com/" + description,
		Notes:       "notes for " + description,
	}
}

// mustInsert inserts a draft and fails the test on error.
func mustInsert(t *testing.T, s *Store, d domain.Draft) int64 {
	t.Helper()
	id, err := s.Insert(context.Background(), d)
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	return id
}
