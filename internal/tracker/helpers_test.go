package tracker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/jobtrack/internal/domain"
	"github.com/roach88/jobtrack/internal/store"
	"github.com/roach88/jobtrack/internal/testutil"
)

// fixedToday is the date every test service treats as today.
const fixedToday = "2024-06-01"

// newTestService creates a Service over a fresh temp-file store.
func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := New(st,
		WithClock(testutil.NewFixedClockOn(2024, time.June, 1)),
		WithBatchIDs(testutil.NewSequentialIDs("").Next),
	)
	return svc, st
}

func mustAdd(t *testing.T, svc *Service, d domain.Draft) int64 {
	t.Helper()
	id, err := svc.Add(context.Background(), d)
	require.NoError(t, err)
	return id
}

func mustList(t *testing.T, svc *Service) []domain.Application {
	t.Helper()
	apps, err := svc.List(context.Background())
	require.NoError(t, err)
	return apps
}

// drafts strips IDs so record sets can be compared across tables.
func drafts(apps []domain.Application) []domain.Draft {
	out := make([]domain.Draft, len(apps))
	for i, a := range apps {
		out[i] = a.Draft()
	}
	return out
}

var errDiskFull = errors.New("disk I/O error")

// failingStore wraps a real store and fails Insert after a number of successes.
type failingStore struct {
	Store
	insertsLeft int
}

func (f *failingStore) Insert(ctx context.Context, d domain.Draft) (int64, error) {
	if f.insertsLeft <= 0 {
		return 0, errDiskFull
	}
	f.insertsLeft--
	return f.Store.Insert(ctx, d)
}

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Insert(context.Context, domain.Draft) (int64, error) { return 0, errDiskFull }
func (brokenStore) Get(context.Context, int64) (domain.Application, error) {
	return domain.Application{}, errDiskFull
}
func (brokenStore) Count(context.Context) (int, error) { return 0, errDiskFull }
func (brokenStore) List(context.Context) ([]domain.Application, error) { return nil, errDiskFull }
func (brokenStore) UpdateStatus(context.Context, int64, string) error { return errDiskFull }
func (brokenStore) DeleteOne(context.Context, int64) error { return errDiskFull }
func (brokenStore) DeleteAll(context.Context) (int64, error) { return 0, errDiskFull }
