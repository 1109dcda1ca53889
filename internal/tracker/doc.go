// Package tracker implements the job application record service.
//
// The Service sits between the CLI and the store. It validates input
// before anything is written, stores text fields exactly as given,
// defaults missing dates to today, enforces the confirmation token on
// destructive operations, and converts the table to and from the CSV
// exchange format.
//
// All failures are returned as *Error values carrying an ErrorCode:
//
//   - VALIDATION: bad date, blank description or status. Nothing written.
//   - NOT_FOUND: unknown ID. Nothing mutated.
//   - STORAGE: database failure, surfaced unchanged.
//   - MALFORMED_CSV_LINE: import line with fewer than six fields. Skipped.
//   - FILE_IO: export/import path unusable.
//
// # CSV format
//
// The header is ID,Description,Date,Status,URL,Notes and each record is the
// six fields joined by bare commas. Nothing is quoted or escaped. On import
// the first five commas split the line, so a comma inside Notes survives the
// round trip but a comma in any earlier field shifts the columns.
//
// Records are newline-terminated and a line break inside a field is written
// as-is. Such a record splits into several lines on export and does not come
// back on import: its pieces are reported as malformed or invalid lines.
//
// Exports are UTF-8. Imports also accept a UTF-8 byte order mark and UTF-16
// files that start with one. The ID column is ignored on import; every
// imported row gets a fresh ID.
package tracker
