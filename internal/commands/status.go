package commands

import (
	"context"
	"flag"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
	"taskcli/internal/service"
)

func init() {
	Register(&DoneCmd{})
	Register(&InProgressCmd{})
	Register(&TodoCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task done" }
func (c *DoneCmd) Usage() string     { return "task-cli done <ref>" }
func (c *DoneCmd) NeedsAuth() bool   { return false }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	return runSetStatus(cfg, deps, service.StatusDone, args, out, errOut)
}

// InProgressCmd implements the in-progress command.
type InProgressCmd struct{}

func (c *InProgressCmd) Name() string      { return "in-progress" }
func (c *InProgressCmd) Aliases() []string { return []string{"mark-in-progress", "start"} }
func (c *InProgressCmd) Synopsis() string  { return "Mark a task in progress" }
func (c *InProgressCmd) Usage() string     { return "task-cli in-progress <ref>" }
func (c *InProgressCmd) NeedsAuth() bool   { return false }

func (c *InProgressCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InProgressCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	return runSetStatus(cfg, deps, service.StatusInProgress, args, out, errOut)
}

// TodoCmd implements the todo command, which reopens a task.
type TodoCmd struct{}

func (c *TodoCmd) Name() string      { return "todo" }
func (c *TodoCmd) Aliases() []string { return []string{"reopen"} }
func (c *TodoCmd) Synopsis() string  { return "Mark a task todo again" }
func (c *TodoCmd) Usage() string     { return "task-cli todo <ref>" }
func (c *TodoCmd) NeedsAuth() bool   { return false }

func (c *TodoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TodoCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	return runSetStatus(cfg, deps, service.StatusTodo, args, out, errOut)
}

// runSetStatus is the shared implementation for the status commands.
// <ref> is a task id or its position in `task-cli list`.
func runSetStatus(cfg *config.Config, deps Deps, status service.Status, args []string, out, errOut io.Writer) int {
	ref, ok := parseRef(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	task, err := deps.Tasks.SetStatus(ref, status)
	if err != nil {
		return reportStoreError(errOut, err)
	}

	cfg.Log.WithField("id", task.ID).WithField("status", status).Debug("status changed")
	if !cfg.Quiet {
		output.FormatOutcome(out, string(status), task)
	}
	return exitcode.Success
}
