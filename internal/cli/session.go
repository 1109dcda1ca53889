package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/jobtrack/internal/store"
	"github.com/roach88/jobtrack/internal/tracker"
)

// CLI-level error codes, alongside the tracker's own codes.
const (
	ErrCodeEmpty        = "EMPTY"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// session bundles what a command needs for one run.
type session struct {
	ctx    context.Context
	svc    *tracker.Service
	out    *OutputFormatter
	in     *prompter
	logger *slog.Logger
}

// withSession opens the database, runs fn and closes the database.
// A database that cannot be opened or created is a command error.
func withSession(opts *RootOptions, cmd *cobra.Command, fn func(s *session) error) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: opts.LogLevel,
	}))

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	out.VerboseLog("Using database %s", opts.Database)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s := &session{
		ctx:    ctx,
		svc:    tracker.New(st, tracker.WithLogger(logger)),
		out:    out,
		in:     newPrompter(cmd.InOrStdin(), out.PromptWriter()),
		logger: logger,
	}
	return fn(s)
}

// fail reports err to the user and returns the matching ExitError.
func (s *session) fail(err error) error {
	code, message, details := describe(err)
	_ = s.out.Error(code, message, details)

	return &ExitError{
		Code:     exitCodeFor(code),
		Message:  message,
		Err:      err,
		Reported: true,
	}
}

// failf reports a CLI-level problem that has no underlying error.
func (s *session) failf(code, format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)
	_ = s.out.Error(code, message, nil)
	return &ExitError{Code: exitCodeFor(code), Message: message, Reported: true}
}

// describe extracts the code, message and details shown for err.
func describe(err error) (code, message string, details interface{}) {
	var te *tracker.Error
	if errors.As(err, &te) {
		if te.Err != nil {
			details = te.Err.Error()
		}
		return string(te.Code), te.Message, details
	}
	return "ERROR", err.Error(), nil
}

func exitCodeFor(code string) int {
	switch tracker.ErrorCode(code) {
	case tracker.ErrCodeStorage, tracker.ErrCodeFileIO:
		return ExitCommandError
	}
	return ExitFailure
}

// parseID parses a positional ID argument.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: must be a whole number", raw)
	}
	return id, nil
}
