package generator

import "github.com/cockroachdb/errors"

// Exit codes of the command.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitRead     = 3
	ExitParse    = 4
	ExitGenerate = 5
	ExitWrite    = 6
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func exitf(code int, err error, format string, args ...any) error {
	return &ExitError{Code: code, Err: errors.Wrapf(err, format, args...)}
}

// ExitCode returns the exit code for err: 0 for nil, the code of an
// ExitError, ExitUsage otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUsage
}
