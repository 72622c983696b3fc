package commands

import "fmt"

// ExitError ends the process with Code. A nil Err means the command already
// wrote its diagnostics and nothing more is printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Silent reports whether the error carries nothing to print.
func (e *ExitError) Silent() bool {
	return e.Err == nil
}

func exitWith(code int) error {
	return &ExitError{Code: code}
}
