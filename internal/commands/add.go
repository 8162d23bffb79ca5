package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "task-cli add <description...>" }
func (c *AddCmd) NeedsAuth() bool   { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	description, ok := joinText(args)
	if !ok {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	task, err := deps.Tasks.Add(description)
	if err != nil {
		return reportStoreError(errOut, err)
	}

	cfg.Log.WithField("id", task.ID).Debug("task added")
	if !cfg.Quiet {
		output.FormatAdded(out, task)
	}
	return exitcode.Success
}
