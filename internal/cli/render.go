package cli

import (
	"fmt"
	"io"

	"github.com/roach88/jobtrack/internal/domain"
)

// writeDetails prints one application in the long form used by list and show.
func writeDetails(w io.Writer, app domain.Application) {
	fmt.Fprintf(w, "ID: %d\n", app.ID)
	fmt.Fprintf(w, "Description: %s\n", app.Description)
	fmt.Fprintf(w, "Date: %s\n", app.Date)
	fmt.Fprintf(w, "Status: %s\n", app.Status)
	fmt.Fprintf(w, "URL: %s\n", domain.OrNA(app.URL))
	fmt.Fprintf(w, "Notes: %s\n", domain.OrNA(app.Notes))
}

// writeList prints every application separated by blank lines.
func writeList(w io.Writer, apps []domain.Application) {
	for _, app := range apps {
		writeDetails(w, app)
		fmt.Fprintln(w)
	}
}

// writeIndex prints the short ID | Description listing shown before a
// selection prompt.
func writeIndex(w io.Writer, apps []domain.Application) {
	fmt.Fprintln(w, "List of Job Applications:")
	for _, app := range apps {
		fmt.Fprintf(w, "ID: %d | Description: %s\n", app.ID, app.Description)
	}
}
