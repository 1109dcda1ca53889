package tracker

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/roach88/jobtrack/internal/domain"
)

// CSVHeader is the first line of every export.
const CSVHeader = "ID,Description,Date,Status,URL,Notes"

// csvFields is the number of columns in a CSV record.
const csvFields = 6

// maxLineBytes bounds a single import line.
const maxLineBytes = 1 << 20

// ImportReport summarizes one import run.
type ImportReport struct {
	// BatchID tags every log line written for this import.
	BatchID string `json:"batch_id"`

	// Imported holds the IDs assigned to the imported rows, in file order.
	Imported []int64 `json:"imported"`

	// Skipped holds one error per line that was not imported. Each has
	// Line set and a code of MALFORMED_CSV_LINE or VALIDATION.
	Skipped []*Error `json:"-"`
}

// Export writes the header and every application to w, in ID order.
// It returns the number of records written.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	apps, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	if err := writeCSV(w, apps); err != nil {
		return 0, NewFileIOError("write", "export output", err)
	}
	return len(apps), nil
}

// ExportFile writes the export to path, creating or truncating it.
//
// The table is read before the file is touched, so a storage failure leaves
// any existing file intact. A write failure part way through may leave a
// partial file behind.
func (s *Service) ExportFile(ctx context.Context, path string) (int, error) {
	apps, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, NewFileIOError("open for writing", path, err)
	}

	if err := writeCSV(f, apps); err != nil {
		f.Close()
		return 0, NewFileIOError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, NewFileIOError("write", path, err)
	}

	s.logger.Info("exported applications", "path", path, "count", len(apps))
	return len(apps), nil
}

// writeCSV joins each record's fields with bare commas. Fields are not
// quoted or escaped, so the output is only lossless when no field before
// Notes contains a comma and no field contains a line break.
func writeCSV(w io.Writer, apps []domain.Application) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(CSVHeader + "\n"); err != nil {
		return err
	}
	for _, app := range apps {
		if _, err := bw.WriteString(strings.Join(app.Fields(), ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Import reads CSV records from r and adds each one.
//
// Input is decoded as UTF-8 unless it starts with a UTF-16 byte order mark;
// a UTF-8 byte order mark is dropped. The first line is skipped as the header. A line with fewer than five
// commas is recorded as malformed and skipped; a line rejected by Add
// validation is recorded and skipped. Neither stops the import. A storage
// failure stops it and is returned together with the partial report.
func (s *Service) Import(ctx context.Context, r io.Reader) (ImportReport, error) {
	report := ImportReport{
		BatchID:  s.batchIDs(),
		Imported: []int64{},
	}
	log := s.logger.With("batch", report.BatchID)

	scanner := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := scanner.Text()

		draft, ok := parseLine(line)
		if !ok {
			lineErr := NewMalformedLineError(lineNo, line)
			report.Skipped = append(report.Skipped, lineErr)
			log.Warn("skipping malformed CSV line", "line", lineNo, "content", line)
			continue
		}

		id, err := s.Add(ctx, draft)
		if err != nil {
			var te *Error
			if errors.As(err, &te) && te.Code == ErrCodeValidation {
				rejected := *te
				rejected.Line = lineNo
				report.Skipped = append(report.Skipped, &rejected)
				log.Warn("skipping invalid CSV record", "line", lineNo, "reason", te.Message)
				continue
			}
			log.Error("import aborted", "line", lineNo, "error", err)
			return report, err
		}
		report.Imported = append(report.Imported, id)
	}

	if err := scanner.Err(); err != nil {
		return report, NewFileIOError("read", "import input", err)
	}

	log.Info("import finished",
		"imported", len(report.Imported),
		"skipped", len(report.Skipped),
	)
	return report, nil
}

// ImportFile opens path and imports it.
func (s *Service) ImportFile(ctx context.Context, path string) (ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportReport{}, NewFileIOError("open for reading", path, err)
	}
	defer f.Close()

	return s.Import(ctx, f)
}

// parseLine splits a record at its first five commas. The ID column is
// discarded and Notes keeps everything after the fifth comma.
func parseLine(line string) (domain.Draft, bool) {
	parts := strings.SplitN(line, ",", csvFields)
	if len(parts) < csvFields {
		return domain.Draft{}, false
	}
	return domain.Draft{
		Description: parts[1],
		Date:        parts[2],
		Status:      parts[3],
		URL:         parts[4],
		Notes:       parts[5],
	}, true
}
