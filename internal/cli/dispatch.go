// Package cli parses the command line and dispatches to registered commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/logger"
	"taskcli/internal/service"
)

// StoreFactory opens the local task store for cfg.
type StoreFactory func(cfg *config.Config) (service.Service, error)

// RemoteFactory creates the sync backend for cfg.
// Errors wrapping service.ErrAuth are reported as auth errors.
type RemoteFactory func(ctx context.Context, cfg *config.Config) (service.Remote, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	stores   StoreFactory
	remotes  RemoteFactory
}

// NewDispatcher creates a dispatcher over registry using the given factories.
func NewDispatcher(registry *commands.Registry, stores StoreFactory, remotes RemoteFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		stores:   stores,
		remotes:  remotes,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		commands.WriteUsage(out, d.registry)
		return exitcode.Success
	}

	cmdName := args[0]

	// Flags require a command in front of them.
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configDir string
		file      string
		quiet     bool
		debug     bool
	)
	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&file, "file", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") && positional[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir, file)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	log := logger.New(errOut, debug)
	cfg.Log = log

	var deps commands.Deps

	tasks, err := d.stores(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}
	deps.Tasks = tasks
	log.WithField("command", cmd.Name()).WithField("store", cfg.StorePath()).Debug("dispatch")

	if cmd.NeedsAuth() {
		remote, err := d.remotes(ctx, cfg)
		if err != nil {
			if errors.Is(err, service.ErrAuth) {
				fmt.Fprintf(errOut, "error: %v\n", err)
				return exitcode.AuthError
			}
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
		deps.Remote = remote
	}

	return cmd.Run(ctx, cfg, deps, positional, out, errOut)
}

// flagErrorMessage rewrites flag package errors into the CLI's wording.
func flagErrorMessage(err error) string {
	msg := err.Error()

	if name, ok := strings.CutPrefix(msg, "flag provided but not defined: "); ok {
		return "unknown flag: " + name
	}
	if strings.HasPrefix(msg, "invalid boolean flag") || strings.HasPrefix(msg, "invalid value") {
		return "bad flag value: " + msg
	}
	return msg
}
