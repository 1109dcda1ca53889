package cli

import (
	"path/filepath"

	"github.com/roach88/jobtrack/internal/domain"
	"github.com/roach88/jobtrack/internal/tracker"
)

// The actions below are shared by the one-shot subcommands and the
// interactive menu. Each reports its own errors and returns them as
// ExitErrors; the menu ignores the returned error and keeps going.

// DeleteResult is the JSON payload of delete and delete-all.
type DeleteResult struct {
	ID      int64 `json:"id,omitempty"`
	Removed int64 `json:"removed"`
	Deleted bool  `json:"deleted"`
}

// ExportResult is the JSON payload of export.
type ExportResult struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// SkippedLine describes an import line that was not imported.
type SkippedLine struct {
	Line    int    `json:"line"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImportResult is the JSON payload of import.
type ImportResult struct {
	Path     string        `json:"path"`
	BatchID  string        `json:"batch_id"`
	Imported []int64       `json:"imported"`
	Skipped  []SkippedLine `json:"skipped"`
}

func (s *session) addApplication(d domain.Draft) error {
	id, err := s.svc.Add(s.ctx, d)
	if err != nil {
		return s.fail(err)
	}

	if s.out.IsJSON() {
		app, err := s.svc.Get(s.ctx, id)
		if err != nil {
			return s.fail(err)
		}
		return s.out.Success(app)
	}
	s.out.Textf("Job application added successfully! (ID %d)", id)
	return nil
}

func (s *session) updateStatus(id int64, status string) error {
	if err := s.svc.UpdateStatus(s.ctx, id, status); err != nil {
		return s.fail(err)
	}

	if s.out.IsJSON() {
		app, err := s.svc.Get(s.ctx, id)
		if err != nil {
			return s.fail(err)
		}
		return s.out.Success(app)
	}
	s.out.Textf("Job application updated successfully!")
	return nil
}

func (s *session) showApplication(id int64) error {
	app, err := s.svc.Get(s.ctx, id)
	if err != nil {
		return s.fail(err)
	}

	if s.out.IsJSON() {
		return s.out.Success(app)
	}
	writeDetails(s.out.Writer, app)
	return nil
}

func (s *session) listApplications() error {
	apps, err := s.svc.List(s.ctx)
	if err != nil {
		return s.fail(err)
	}

	if s.out.IsJSON() {
		return s.out.Success(apps)
	}
	if len(apps) == 0 {
		s.out.Textf("No job applications recorded.")
		return nil
	}
	writeList(s.out.Writer, apps)
	return nil
}

// deleteApplication shows the record, asks for confirmation and deletes it.
func (s *session) deleteApplication(id int64, confirm func() string) error {
	app, err := s.svc.Get(s.ctx, id)
	if err != nil {
		return s.fail(err)
	}

	if !s.out.IsJSON() {
		s.out.Textf("Job Application Details:")
		writeDetails(s.out.Writer, app)
	}

	deleted, err := s.svc.DeleteOne(s.ctx, id, confirm())
	if err != nil {
		return s.fail(err)
	}

	result := DeleteResult{ID: id, Deleted: deleted}
	if deleted {
		result.Removed = 1
	}
	if s.out.IsJSON() {
		return s.out.Success(result)
	}
	if deleted {
		s.out.Textf("Job application removed successfully!")
	} else {
		s.out.Textf("Deletion canceled.")
	}
	return nil
}

// deleteAllApplications asks for confirmation and empties the table.
// An already empty table is reported without asking.
func (s *session) deleteAllApplications(confirm func() string) error {
	count, err := s.svc.Count(s.ctx)
	if err != nil {
		return s.fail(err)
	}
	if count == 0 {
		if s.out.IsJSON() {
			return s.out.Success(DeleteResult{})
		}
		s.out.Textf("DB is already empty.")
		return nil
	}

	removed, deleted, err := s.svc.DeleteAll(s.ctx, confirm())
	if err != nil {
		return s.fail(err)
	}

	if s.out.IsJSON() {
		return s.out.Success(DeleteResult{Removed: removed, Deleted: deleted})
	}
	if deleted {
		s.out.Textf("All job applications removed successfully! (%d removed)", removed)
	} else {
		s.out.Textf("Deletion canceled.")
	}
	return nil
}

func (s *session) exportApplications(path string) error {
	count, err := s.svc.Count(s.ctx)
	if err != nil {
		return s.fail(err)
	}
	if count == 0 {
		return s.failf(ErrCodeEmpty, "DB is empty. No entries to export.")
	}

	abs := absPath(path)
	n, err := s.svc.ExportFile(s.ctx, abs)
	if err != nil {
		return s.fail(err)
	}

	if s.out.IsJSON() {
		return s.out.Success(ExportResult{Path: abs, Records: n})
	}
	s.out.Textf("Job applications exported to %s successfully! (%d entries)", abs, n)
	return nil
}

func (s *session) importApplications(path string) error {
	abs := absPath(path)
	report, err := s.svc.ImportFile(s.ctx, abs)

	result := ImportResult{
		Path:     abs,
		BatchID:  report.BatchID,
		Imported: report.Imported,
		Skipped:  []SkippedLine{},
	}
	if result.Imported == nil {
		result.Imported = []int64{}
	}
	for _, skipped := range report.Skipped {
		result.Skipped = append(result.Skipped, SkippedLine{
			Line:    skipped.Line,
			Code:    string(skipped.Code),
			Message: skipped.Message,
		})
		s.out.Textf("Skipped line %d: %s", skipped.Line, skipped.Message)
	}

	if err != nil {
		return s.fail(err)
	}

	if s.out.IsJSON() {
		return s.out.Success(result)
	}
	s.out.Textf("Job applications imported from %s successfully! (%d imported, %d skipped)",
		abs, len(result.Imported), len(result.Skipped))
	return nil
}

// absPath resolves path for display and file access. If the working
// directory cannot be determined the path is used as given.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// confirmWith returns a confirm callback that prompts unless yes is set.
func (s *session) confirmWith(yes bool, prompt string) func() string {
	return func() string {
		if yes {
			return tracker.ConfirmYes
		}
		return s.in.confirm(prompt)
	}
}
