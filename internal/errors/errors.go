// Package errors defines the sentinel errors used across zrep.
//
// Callers categorize failures with errors.Is. This package must not import
// other internal packages.
package errors

import "errors"

var (
	// ErrReporterNotConfigured indicates that no reporter entry carrying the
	// Zephyr settings was found.
	ErrReporterNotConfigured = errors.New("zephyr reporter is not configured")

	// ErrConfigInvalid indicates that the resolved settings break a RunConfig invariant.
	ErrConfigInvalid = errors.New("invalid zephyr configuration")

	// ErrSubmitFailed indicates that the test-management service rejected the batch.
	ErrSubmitFailed = errors.New("test run submission failed")

	// ErrUnknownFormat indicates an unsupported report format name.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrParseFailed indicates that a runner report could not be decoded.
	ErrParseFailed = errors.New("failed to parse report")

	// ErrTestCommandFailed indicates that the wrapped test command exited non-zero.
	ErrTestCommandFailed = errors.New("test command failed")

	// ErrEmptyCommand indicates that `run` was invoked without a command.
	ErrEmptyCommand = errors.New("no test command given")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
