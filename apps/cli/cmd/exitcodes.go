package cmd

import "fmt"

// Exit codes for domspec CLI
const (
	// ExitSuccess indicates every fixture loaded
	ExitSuccess = 0

	// ExitFixtureFailure indicates one or more fixtures could not be loaded
	ExitFixtureFailure = 1

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries the process exit code for an error returned by a command.
type exitError struct {
	code int
	err  error
}

func exitWith(code int, err error) error {
	return &exitError{code: code, err: err}
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}
