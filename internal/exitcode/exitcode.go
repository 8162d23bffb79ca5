// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, task not found, invalid status).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// BackendError indicates a remote backend/API/network error.
	BackendError = 3

	// StoreError indicates the task file could not be read, parsed or written.
	StoreError = 4
)
