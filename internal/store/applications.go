package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/jobtrack/internal/domain"
)

// ErrNotFound is returned when no application has the requested ID.
var ErrNotFound = errors.New("application not found")

// Insert writes a new application and returns its assigned ID.
// The draft is stored as given; validation is the caller's job.
func (s *Store) Insert(ctx context.Context, d domain.Draft) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO job_applications
		(description, date, status, url, notes)
		VALUES (?, ?, ?, ?, ?)
	`,
		d.Description,
		d.Date,
		d.Status,
		d.URL,
		d.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert application: last insert id: %w", err)
	}
	return id, nil
}

// Get retrieves a single application by ID.
// Returns an error wrapping ErrNotFound if no such row exists.
func (s *Store) Get(ctx context.Context, id int64) (domain.Application, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, description, date, status, COALESCE(url, ''), COALESCE(notes, '')
		FROM job_applications
		WHERE id = ?
	`, id)

	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Application{}, fmt.Errorf("get application %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Application{}, fmt.Errorf("get application %d: %w", id, err)
	}
	return app, nil
}

// Count returns the number of stored applications.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return count, nil
}

// List returns every application ordered by ID ascending.
// Returns an empty slice (not nil) when the table is empty.
func (s *Store) List(ctx context.Context) ([]domain.Application, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, date, status, COALESCE(url, ''), COALESCE(notes, '')
		FROM job_applications
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}

	return apps, nil
}

// UpdateStatus overwrites the status of one application. No other column
// is touched. Returns an error wrapping ErrNotFound if no row matched.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE job_applications SET status = ? WHERE id = ?
	`, status, id)
	if err != nil {
		return fmt.Errorf("update status %d: %w", id, err)
	}
	return requireAffected(result, fmt.Sprintf("update status %d", id))
}

// DeleteOne removes one application.
// Returns an error wrapping ErrNotFound if no row matched.
func (s *Store) DeleteOne(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete application %d: %w", id, err)
	}
	return requireAffected(result, fmt.Sprintf("delete application %d", id))
}

// DeleteAll removes every application and returns how many rows were deleted.
// The AUTOINCREMENT counter is kept, so later inserts still get fresh IDs.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM job_applications`)
	if err != nil {
		return 0, fmt.Errorf("delete all applications: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete all applications: rows affected: %w", err)
	}
	return n, nil
}

func requireAffected(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (domain.Application, error) {
	var app domain.Application
	err := row.Scan(
		&app.ID,
		&app.Description,
		&app.Date,
		&app.Status,
		&app.URL,
		&app.Notes,
	)
	return app, err
}
