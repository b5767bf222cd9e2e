package cmd

import (
	"io"
)

// Every verb must be able to define and validate its command line arguments and respond to the
// developer switches.

type Command interface {
	// One-line-per-element documentation shown at the top of the help text
	Summary() []string

	// Add all arguments including shared arguments
	Add(fs *CLI)

	// Validate all arguments including shared arguments
	Validate() error

	// The -v flag
	VerboseFlag() bool
}

// A verb that reads the cluster reports and prints a table.

type ReportCommand interface {
	Command

	Perform(stdout, stderr io.Writer) error
}
