// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty input, row out of range).
	UserError = 1

	// AuthError indicates a config error or missing Google credentials.
	AuthError = 2

	// BackendError indicates a storage, API or network error.
	BackendError = 3
)
