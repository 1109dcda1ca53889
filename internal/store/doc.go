// Package store provides SQLite-backed storage for job applications.
//
// The store owns a single table, job_applications, and exposes the primitive
// operations the tracker builds on: insert, get, count, list, update status,
// delete one and delete all.
//
// # Invariants
//
//   - IDs come from INTEGER PRIMARY KEY AUTOINCREMENT, so an ID is never
//     reused after its row is deleted.
//   - List orders by id ASC; results are deterministic regardless of the
//     physical row order.
//   - Every statement binds user input through ? placeholders. Query text
//     never contains user data.
//   - A missing row is reported as ErrNotFound, never as a nil record.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - one open connection (single writer, no concurrent sessions)
//
// Databases written by earlier versions of the tool used nullable url and
// notes columns. Migration v1 backfills those NULLs with empty strings.
package store
