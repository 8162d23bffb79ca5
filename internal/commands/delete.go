package commands

import (
	"context"
	"flag"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "task-cli delete <ref>" }
func (c *DeleteCmd) NeedsAuth() bool   { return false }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	ref, ok := parseRef(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	task, err := deps.Tasks.Delete(ref)
	if err != nil {
		return reportStoreError(errOut, err)
	}

	cfg.Log.WithField("id", task.ID).Debug("task deleted")
	if !cfg.Quiet {
		output.FormatOutcome(out, "deleted", task)
	}
	return exitcode.Success
}
