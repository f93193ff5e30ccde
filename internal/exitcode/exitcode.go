// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion. Network and API failures are
	// reported on stderr but still exit with Success.
	Success = 0

	// UserError indicates a user error (bad args, conflicting options).
	UserError = 1

	// AuthError indicates the user ID could not be resolved.
	AuthError = 2
)
