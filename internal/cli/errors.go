package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"revcomp/internal/writers"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1 // at least one sequence was rejected
	exitUsage   = 2 // bad flags, arguments, configuration or unreadable input
	exitIO      = 3 // writing output failed
)

// exitError carries an explicit exit code. A nil err means the message was
// already written.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// outputErr classifies a failure to write results.
func outputErr(err error) error {
	if err == nil || writers.IsBrokenPipe(err) {
		return nil
	}
	return &exitError{code: exitIO, err: err}
}

// exitCode reports err on stderr and maps it to a process exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, context.Canceled) || writers.IsBrokenPipe(err) {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			_, _ = fmt.Fprintln(stderr, "Error:", ee.err)
		}
		return ee.code
	}
	// Config errors and whatever cobra reports for flags or arguments.
	_, _ = fmt.Fprintln(stderr, "Error:", err)
	return exitUsage
}
