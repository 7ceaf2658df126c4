// Package aliendict provides public constants for external tools wrapping
// the aliendict CLI.
package aliendict

// Exit codes returned by the aliendict CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully. An inference
	// run that found no consistent ordering still exits with ExitSuccess;
	// the empty stdout distinguishes it.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (unreadable file, etc.).
	ExitFailure = 1

	// ExitInputError indicates an invalid word list (malformed JSON, schema
	// violation, limit breach, or a contradictory ordering).
	ExitInputError = 2

	// ExitConfigError indicates a configuration error (invalid config file
	// or command-line usage).
	ExitConfigError = 3
)
