package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/jobtrack/internal/domain"
)

// Confirmation prompts.
const (
	promptDeleteOne = "Are you sure you want to delete this job application? (yes/no): "
	promptDeleteAll = "Are you sure you want to delete ALL job applications? (yes/no): "
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Draft domain.Draft
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new job application",
		Long: `Record a new job application.

The date must be YYYY-MM-DD; when omitted, today's date is used.

Examples:
  jobtrack add -d "Backend Engineer at Acme" -s Applied
  jobtrack add -d "SRE at Globex" -s Applied --date 2024-02-03 --url https://globex.example/jobs/7`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts.RootOptions, cmd, func(s *session) error {
				return s.addApplication(opts.Draft)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Draft.Description, "description", "d", "", "job description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVarP(&opts.Draft.Status, "status", "s", "", "status, e.g. Applied, Interviewing, Rejected (required)")
	_ = cmd.MarkFlagRequired("status")
	cmd.Flags().StringVar(&opts.Draft.Date, "date", "", "application date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.Draft.URL, "url", "", "job description URL")
	cmd.Flags().StringVar(&opts.Draft.Notes, "notes", "", "free-form notes")

	return cmd
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Change the status of a job application",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(s *session) error {
				id, err := parseID(args[0])
				if err != nil {
					return s.failf(ErrCodeInvalidInput, "%v", err)
				}
				return s.updateStatus(id, status)
			})
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "new status (required)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <id>",
		Short:         "Show one job application",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(s *session) error {
				id, err := parseID(args[0])
				if err != nil {
					return s.failf(ErrCodeInvalidInput, "%v", err)
				}
				return s.showApplication(id)
			})
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Aliases:       []string{"ls"},
		Short:         "List all job applications",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(s *session) error {
				return s.listApplications()
			})
		},
	}
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one job application",
		Long: `Delete one job application.

The record is shown and you are asked to confirm. Only "yes" or "y"
deletes; any other answer cancels. Pass --yes to skip the prompt.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(s *session) error {
				id, err := parseID(args[0])
				if err != nil {
					return s.failf(ErrCodeInvalidInput, "%v", err)
				}
				return s.deleteApplication(id, s.confirmWith(yes, promptDeleteOne))
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")

	return cmd
}

// NewDeleteAllCommand creates the delete-all command.
func NewDeleteAllCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:           "delete-all",
		Short:         "Delete every job application",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(s *session) error {
				return s.deleteAllApplications(s.confirmWith(yes, promptDeleteAll))
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")

	return cmd
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export all job applications to CSV",
		Long: `Export all job applications to a CSV file.

The file starts with the header ID,Description,Date,Status,URL,Notes and
holds one line per application. Fields are joined with bare commas and are
not quoted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(s *session) error {
				return s.exportApplications(args[0])
			})
		},
	}
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import job applications from CSV",
		Long: `Import job applications from a CSV file in the export format.

The first line is skipped as the header. The ID column is ignored and every
imported row gets a new ID. Lines with fewer than six fields, or with
values that fail validation, are reported and skipped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(s *session) error {
				return s.importApplications(args[0])
			})
		},
	}
}
