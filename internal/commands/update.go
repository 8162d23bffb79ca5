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
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
// Unlike the status commands it only accepts a task id, never a position.
type UpdateCmd struct{}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"edit"} }
func (c *UpdateCmd) Synopsis() string  { return "Change a task's description" }
func (c *UpdateCmd) Usage() string     { return "task-cli update <id> <description...>" }
func (c *UpdateCmd) NeedsAuth() bool   { return false }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	description, ok := joinText(args[1:])
	if !ok {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	task, err := deps.Tasks.UpdateDescription(args[0], description)
	if err != nil {
		return reportStoreError(errOut, err)
	}

	cfg.Log.WithField("id", task.ID).Debug("description updated")
	if !cfg.Quiet {
		output.FormatOutcome(out, "updated", task)
	}
	return exitcode.Success
}
