// Package domain defines the job application record shared by the store,
// the tracker service and the CLI.
package domain

import "strings"

// Application is one row of the job_applications table.
//
// URL and Notes are optional; the empty string means absent.
type Application struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	Status      string `json:"status"`
	URL         string `json:"url,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Draft holds the user-supplied fields of a new application.
// The store assigns the ID on insert.
type Draft struct {
	Description string
	Date        string
	Status      string
	URL         string
	Notes       string
}

// IsBlank reports whether s contains nothing but whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Fields returns the application fields in CSV column order.
func (a Application) Fields() []string {
	return []string{
		formatID(a.ID),
		a.Description,
		a.Date,
		a.Status,
		a.URL,
		a.Notes,
	}
}

// Draft returns the user-supplied part of the record.
func (a Application) Draft() Draft {
	return Draft{
		Description: a.Description,
		Date:        a.Date,
		Status:      a.Status,
		URL:         a.URL,
		Notes:       a.Notes,
	}
}
