// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or writes tasks.
	// Commands like help, version, login, logout return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, settings, logger).
	// st is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// in is where confirmations are read from.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, in io.Reader, out, errOut io.Writer) int
}

// FileLogger is implemented by commands that own the terminal and want logs
// written to the log file in the config directory instead of stderr.
type FileLogger interface {
	LogsToFile() bool
}
