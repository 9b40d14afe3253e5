package console

import "io"

// UserInterface defines the contract for interacting with the user.
// Console implements this interface directly; tests provide fakes so
// command logic is exercised without a terminal.
type UserInterface interface {
	// Message display methods
	PrintInfo(format string, args ...interface{})
	PrintWarn(format string, args ...interface{})
	PrintError(format string, args ...interface{})
	PrintSuccess(format string, args ...interface{})
	Printf(format string, args ...interface{})

	// Confirm asks a yes/no question. An empty answer yields
	// defaultYes; an interrupt during the prompt returns an error that
	// aborts only the running command.
	Confirm(prompt string, defaultYes bool) (bool, error)

	// Width returns the usable terminal width in columns
	Width() int

	// Writer returns the underlying writer for structured data (tables, etc.)
	Writer() io.Writer
}
