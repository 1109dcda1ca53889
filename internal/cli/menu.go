package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/jobtrack/internal/domain"
)

const menuText = `1. Add New Job Application
2. Update Job Application Status
3. View All Job Applications
4. Remove Job Application
5. Remove All Entries
6. Export to CSV
7. Import from CSV
8. Exit
Enter your choice: `

const menuExit = 8

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Long: `Start the interactive menu.

Every operation is available from a numbered menu. Errors are reported and
the menu is shown again; choose 8 or close the input to leave.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(rootOpts, cmd)
		},
	}
}

// runMenu opens the database and runs the menu loop. The menu always
// talks text, whatever --format says.
func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	menuOpts := *opts
	menuOpts.Format = "text"

	return withSession(&menuOpts, cmd, func(s *session) error {
		return s.menuLoop()
	})
}

func (s *session) menuLoop() error {
	w := s.out.Writer
	actions := map[int]func() error{
		1: s.menuAdd,
		2: s.menuUpdate,
		3: s.listApplications,
		4: s.menuDelete,
		5: s.menuDeleteAll,
		6: s.menuExport,
		7: s.menuImport,
	}

	for {
		answer, err := s.in.ask(menuText)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read input", err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || choice < 1 || choice > menuExit {
			fmt.Fprintf(w, "Error: Invalid Input. Please enter a number between 1 and %d.\n\n", menuExit)
			continue
		}
		if choice == menuExit {
			return nil
		}

		// Failures were already reported; only running out of input ends
		// the session.
		if err := actions[choice](); errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		fmt.Fprintln(w)
	}
}

func (s *session) menuAdd() error {
	var d domain.Draft
	prompts := []struct {
		text   string
		target *string
	}{
		{"Enter Job Description: ", &d.Description},
		{"Enter Date (YYYY-MM-DD or leave empty for today): ", &d.Date},
		{"Enter Status (e.g., Applied, Interviewing, Rejected): ", &d.Status},
		{"Enter Job Description URL (optional): ", &d.URL},
		{"Enter Notes (optional): ", &d.Notes},
	}
	for _, p := range prompts {
		answer, err := s.in.ask(p.text)
		if err != nil {
			return err
		}
		*p.target = answer
	}

	return s.addApplication(d)
}

// selectID shows the index and asks for an ID. ok is false when the table
// is empty or the answer is not a number; both are reported here.
func (s *session) selectID(verb string) (id int64, ok bool, err error) {
	count, err := s.svc.Count(s.ctx)
	if err != nil {
		return 0, false, s.fail(err)
	}
	if count == 0 {
		return 0, false, s.failf(ErrCodeEmpty, "DB is empty. Cannot %s entries.", verb)
	}

	apps, err := s.svc.List(s.ctx)
	if err != nil {
		return 0, false, s.fail(err)
	}
	writeIndex(s.out.Writer, apps)

	answer, err := s.in.ask(fmt.Sprintf("Enter the ID of the job application you want to %s: ", verb))
	if err != nil {
		return 0, false, err
	}
	id, err = parseID(strings.TrimSpace(answer))
	if err != nil {
		return 0, false, s.failf(ErrCodeInvalidInput, "%v", err)
	}
	return id, true, nil
}

func (s *session) menuUpdate() error {
	id, ok, err := s.selectID("update")
	if !ok {
		return err
	}

	app, err := s.svc.Get(s.ctx, id)
	if err != nil {
		return s.fail(err)
	}
	s.out.Textf("Job Application Details:")
	writeDetails(s.out.Writer, app)

	status, err := s.in.ask("Enter New Status (e.g., Applied, Interviewing, Rejected): ")
	if err != nil {
		return err
	}
	return s.updateStatus(id, status)
}

func (s *session) menuDelete() error {
	id, ok, err := s.selectID("remove")
	if !ok {
		return err
	}
	return s.deleteApplication(id, s.confirmWith(false, promptDeleteOne))
}

func (s *session) menuDeleteAll() error {
	return s.deleteAllApplications(s.confirmWith(false, promptDeleteAll))
}

func (s *session) menuExport() error {
	count, err := s.svc.Count(s.ctx)
	if err != nil {
		return s.fail(err)
	}
	if count == 0 {
		return s.failf(ErrCodeEmpty, "DB is empty. No entries to export.")
	}

	path, err := s.in.ask("Enter the name of the CSV file to export to (e.g., job_applications.csv): ")
	if err != nil {
		return err
	}
	return s.exportApplications(strings.TrimSpace(path))
}

func (s *session) menuImport() error {
	path, err := s.in.ask("Enter the name of the CSV file to import from (e.g., job_applications.csv): ")
	if err != nil {
		return err
	}
	return s.importApplications(strings.TrimSpace(path))
}
