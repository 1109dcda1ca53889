package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/roach88/jobtrack/internal/domain"
)

func TestInsert_AssignsIncreasingIDs(t *testing.T) {
	s := createTestStore(t)

	var last int64
	for i := 0; i < 5; i++ {
		id := mustInsert(t, s, createTestDraft(fmt.Sprintf("job-%d", i), "Applied"))
		if id <= last {
			t.Errorf("insert %d: id %d not greater than previous %d", i, id, last)
		}
		last = id
	}
}

func TestInsert_IDsNotReusedAfterDelete(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := mustInsert(t, s, createTestDraft("a", "Applied"))
	second := mustInsert(t, s, createTestDraft("b", "Applied"))

	if err := s.DeleteOne(ctx, second); err != nil {
		t.Fatalf("DeleteOne() failed: %v", err)
	}
	third := mustInsert(t, s, createTestDraft("c", "Applied"))
	if third <= second {
		t.Errorf("id %d reused after deleting %d", third, second)
	}

	if _, err := s.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll() failed: %v", err)
	}
	fourth := mustInsert(t, s, createTestDraft("d", "Applied"))
	if fourth <= third || fourth == first {
		t.Errorf("id %d reused after DeleteAll (previous max %d)", fourth, third)
	}
}

func TestGet_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	draft := createTestDraft("platform", "Interviewing")
	id := mustInsert(t, s, draft)

	got, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	want := domain.Application{
		ID:          id,
		Description: draft.Description,
		Date:        draft.Date,
		Status:      draft.Status,
		URL:         draft.URL,
		Notes:       draft.Notes,
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestGet_EmptyOptionalFields(t *testing.T) {
	s := createTestStore(t)
	id := mustInsert(t, s, domain.Draft{Description: "bare", Date: "2024-02-01", Status: "Applied"})

	got, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.URL != "" || got.Notes != "" {
		t.Errorf("expected empty optional fields, got url=%q notes=%q", got.URL, got.Notes)
	}
}

func TestRead_NullOptionalFieldsReadAsEmpty(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Another writer may store NULLs after the backfill migration has run
	result, err := s.db.Exec(`INSERT INTO job_applications (description, date, status, url, notes) VALUES ('external', '2024-02-01', 'Applied', NULL, NULL)`)
	if err != nil {
		t.Fatalf("failed to insert row with NULLs: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("LastInsertId() failed: %v", err)
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.URL != "" || got.Notes != "" {
		t.Errorf("Get() url=%q notes=%q, want empty", got.URL, got.Notes)
	}

	apps, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(apps) != 1 || apps[0].URL != "" || apps[0].Notes != "" {
		t.Errorf("List() = %+v, want one row with empty url and notes", apps)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Get(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(999) error = %v, want ErrNotFound", err)
	}
}

func TestGet_ParameterizedInput(t *testing.T) {
	s := createTestStore(t)
	hostile := domain.Draft{
		Description: "x'); DROP TABLE job_applications; --",
		Date:        "2024-01-01",
		Status:      "Applied",
	}
	id := mustInsert(t, s, hostile)

	got, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Description != hostile.Description {
		t.Errorf("description = %q, want %q", got.Description, hostile.Description)
	}
}

func TestCount(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Count() on empty table = %d, want 0", count)
	}

	mustInsert(t, s, createTestDraft("a", "Applied"))
	mustInsert(t, s, createTestDraft("b", "Applied"))

	count, err = s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestList_EmptyReturnsEmptySlice(t *testing.T) {
	s := createTestStore(t)

	apps, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if apps == nil {
		t.Error("List() returned nil, want empty slice")
	}
	if len(apps) != 0 {
		t.Errorf("List() returned %d rows, want 0", len(apps))
	}
}

func TestList_OrderedByID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	ids := []int64{
		mustInsert(t, s, createTestDraft("c", "Applied")),
		mustInsert(t, s, createTestDraft("a", "Applied")),
		mustInsert(t, s, createTestDraft("b", "Applied")),
	}
	// Rewrite the first row so its physical position could change
	if err := s.UpdateStatus(ctx, ids[0], "Rejected"); err != nil {
		t.Fatalf("UpdateStatus() failed: %v", err)
	}

	apps, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(apps) != len(ids) {
		t.Fatalf("List() returned %d rows, want %d", len(apps), len(ids))
	}
	for i, app := range apps {
		if app.ID != ids[i] {
			t.Errorf("apps[%d].ID = %d, want %d", i, app.ID, ids[i])
		}
	}
}

func TestUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	id := mustInsert(t, s, createTestDraft("data", "Applied"))

	before, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	if err := s.UpdateStatus(ctx, id, "Interviewing"); err != nil {
		t.Fatalf("UpdateStatus() failed: %v", err)
	}

	after, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	want := before
	want.Status = "Interviewing"
	if after != want {
		t.Errorf("after UpdateStatus = %+v, want %+v", after, want)
	}
}

func TestUpdateStatus_SameValueSucceeds(t *testing.T) {
	s := createTestStore(t)
	id := mustInsert(t, s, createTestDraft("data", "Applied"))

	if err := s.UpdateStatus(context.Background(), id, "Applied"); err != nil {
		t.Errorf("UpdateStatus() with unchanged value failed: %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	s := createTestStore(t)

	err := s.UpdateStatus(context.Background(), 42, "Rejected")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStatus(42) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteOne_RemovesOnlyThatRow(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	keep1 := mustInsert(t, s, createTestDraft("keep1", "Applied"))
	drop := mustInsert(t, s, createTestDraft("drop", "Applied"))
	keep2 := mustInsert(t, s, createTestDraft("keep2", "Applied"))

	if err := s.DeleteOne(ctx, drop); err != nil {
		t.Fatalf("DeleteOne() failed: %v", err)
	}

	if _, err := s.Get(ctx, drop); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted row still readable: %v", err)
	}
	for _, id := range []int64{keep1, keep2} {
		if _, err := s.Get(ctx, id); err != nil {
			t.Errorf("row %d missing after unrelated delete: %v", id, err)
		}
	}
}

func TestDeleteOne_NotFound(t *testing.T) {
	s := createTestStore(t)

	err := s.DeleteOne(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteOne(7) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteAll_ReturnsRemovedCount(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		mustInsert(t, s, createTestDraft(fmt.Sprintf("job-%d", i), "Applied"))
	}

	n, err := s.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("DeleteAll() = %d, want 3", n)
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Count() after DeleteAll = %d, want 0", count)
	}
}

func TestDeleteAll_EmptyTable(t *testing.T) {
	s := createTestStore(t)

	n, err := s.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("DeleteAll() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("DeleteAll() on empty table = %d, want 0", n)
	}
}

func TestClosedStore_ReturnsErrors(t *testing.T) {
	s := createTestStore(t)
	s.Close()

	if _, err := s.Insert(context.Background(), createTestDraft("x", "Applied")); err == nil {
		t.Error("Insert() on closed store should fail")
	}
	if _, err := s.List(context.Background()); err == nil {
		t.Error("List() on closed store should fail")
	}
}
