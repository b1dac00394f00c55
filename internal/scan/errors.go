package scan

import "errors"

// ErrNoFilter is returned when none of -f, --href, --all-files or --src was given.
var ErrNoFilter = errors.New("no scan filter selected")

// UsageError wraps a command line error. It maps to exit status 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an action error to a process exit status.
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usage):
		return 2
	default:
		return 1
	}
}
