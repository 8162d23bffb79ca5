package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/mirror"
	"taskcli/internal/service"
)

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command: push the local store to Google Tasks.
type SyncCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *SyncCmd) SetListName(name string) {
	c.listName = name
}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return []string{"push"} }
func (c *SyncCmd) Synopsis() string  { return "Mirror tasks to a Google Tasks list" }
func (c *SyncCmd) Usage() string     { return "task-cli sync [--list <list-name>]" }
func (c *SyncCmd) NeedsAuth() bool   { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", mirror.DefaultListTitle, "")
	fs.StringVar(&c.listName, "l", mirror.DefaultListTitle, "")
}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	// Pushing an empty view of a corrupt store would wipe the remote list.
	tasks, err := deps.Tasks.Load()
	if err != nil {
		return reportStoreError(errOut, err)
	}

	res, err := mirror.Push(ctx, deps.Remote, c.listName, tasks, cfg.Log)
	if errors.Is(err, service.ErrAuth) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "synced: created=%d updated=%d deleted=%d unchanged=%d\n",
			res.Created, res.Updated, res.Deleted, res.Unchanged)
	}
	return exitcode.Success
}
