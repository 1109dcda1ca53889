package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/jobtrack/internal/calendar"
	"github.com/roach88/jobtrack/internal/domain"
	"github.com/roach88/jobtrack/internal/store"
)

// Store is the persistence the Service needs. *store.Store satisfies it.
//
// Implementations must report a missing row with an error wrapping
// store.ErrNotFound.
type Store interface {
	Insert(ctx context.Context, d domain.Draft) (int64, error)
	Get(ctx context.Context, id int64) (domain.Application, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	DeleteOne(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

// Confirmation tokens accepted by destructive operations.
const (
	ConfirmYes   = "yes"
	ConfirmShort = "y"
)

// Service validates and persists job applications.
type Service struct {
	store    Store
	clock    calendar.Clock
	logger   *slog.Logger
	batchIDs func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for date defaulting.
func WithClock(c calendar.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithBatchIDs sets the generator for import batch identifiers.
func WithBatchIDs(next func() string) Option {
	return func(s *Service) {
		s.batchIDs = next
	}
}

// New creates a Service over st.
//
// Defaults: system clock, logs discarded, UUIDv7 batch IDs.
func New(st Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		clock:  calendar.SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		batchIDs: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Confirmed reports whether token authorizes a destructive operation.
// Only the exact strings "yes" and "y" do; matching is case-sensitive.
func Confirmed(token string) bool {
	return token == ConfirmYes || token == ConfirmShort
}

// Add validates d and inserts it, returning the new ID.
//
// An empty date is replaced by today's date. On a validation failure
// nothing is written.
func (s *Service) Add(ctx context.Context, d domain.Draft) (int64, error) {
	if d.Date == "" {
		d.Date = calendar.Today(s.clock)
	}
	if !calendar.IsValid(d.Date) {
		return 0, NewValidationError("invalid date format; use YYYY-MM-DD or leave empty for today's date")
	}
	if domain.IsBlank(d.Description) {
		return 0, NewValidationError("description is required")
	}
	if domain.IsBlank(d.Status) {
		return 0, NewValidationError("status is required")
	}

	id, err := s.store.Insert(ctx, d)
	if err != nil {
		return 0, NewStorageError("failed to add job application", err)
	}

	s.logger.Debug("application added",
		"id", id,
		"date", d.Date,
		"status", d.Status,
	)
	return id, nil
}

// Get returns one application.
func (s *Service) Get(ctx context.Context, id int64) (domain.Application, error) {
	app, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Application{}, s.classify(id, "failed to read job application", err)
	}
	return app, nil
}

// List returns every application in ID order.
func (s *Service) List(ctx context.Context) ([]domain.Application, error) {
	apps, err := s.store.List(ctx)
	if err != nil {
		return nil, NewStorageError("failed to list job applications", err)
	}
	return apps, nil
}

// Count returns the number of stored applications.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, NewStorageError("failed to count job applications", err)
	}
	return n, nil
}

// UpdateStatus replaces the status of an existing application.
// Every other field is left untouched.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if domain.IsBlank(status) {
		return NewValidationError("status is required")
	}

	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return s.classify(id, "failed to update job application", err)
	}

	s.logger.Debug("status updated", "id", id, "status", status)
	return nil
}

// DeleteOne removes an existing application if confirmation is an accepted
// token. It reports whether the row was deleted; any other token cancels
// the operation without error.
func (s *Service) DeleteOne(ctx context.Context, id int64, confirmation string) (bool, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return false, err
	}

	if !Confirmed(confirmation) {
		s.logger.Debug("deletion cancelled", "id", id)
		return false, nil
	}

	if err := s.store.DeleteOne(ctx, id); err != nil {
		return false, s.classify(id, "failed to remove job application", err)
	}

	s.logger.Debug("application removed", "id", id)
	return true, nil
}

// DeleteAll removes every application if confirmation is an accepted token.
// It returns the number of rows removed and whether the deletion ran.
func (s *Service) DeleteAll(ctx context.Context, confirmation string) (int64, bool, error) {
	if !Confirmed(confirmation) {
		s.logger.Debug("delete all cancelled")
		return 0, false, nil
	}

	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, false, NewStorageError("failed to remove job applications", err)
	}

	s.logger.Info("all applications removed", "count", n)
	return n, true, nil
}

// classify maps a store error to NOT_FOUND or STORAGE.
func (s *Service) classify(id int64, op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return NewNotFoundError(id, err)
	}
	return NewStorageError(op, err)
}
