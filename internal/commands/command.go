// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/service"
	"taskcli/internal/store"
)

// Deps carries the backends a command may use.
type Deps struct {
	// Tasks is the local task store. Always set.
	Tasks service.Service

	// Remote is the mirror backend. Nil unless NeedsAuth() is true.
	Remote service.Remote
}

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

	// NeedsAuth returns true if the command talks to the remote backend.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int
}

// reportStoreError prints a store failure and returns the matching exit code.
func reportStoreError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	if errors.Is(err, store.ErrNotFound) {
		return exitcode.UserError
	}
	return exitcode.StoreError
}

// parseRef parses the single task reference argument.
func parseRef(args []string, errOut io.Writer) (service.Reference, bool) {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: too many arguments: %s\n", strings.Join(args[1:], " "))
		return service.Reference{}, false
	}
	var input string
	if len(args) == 1 {
		input = args[0]
	}
	ref, err := service.ParseReference(input)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Reference{}, false
	}
	return ref, true
}

// joinText joins words into a description; ok is false when it is blank.
func joinText(words []string) (string, bool) {
	text := strings.Join(words, " ")
	return text, strings.TrimSpace(text) != ""
}
