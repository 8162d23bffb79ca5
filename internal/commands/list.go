package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"strings"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
	"taskcli/internal/service"
	"taskcli/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `task-cli list` and `task-cli list <status>`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks, optionally by status" }
func (c *ListCmd) Usage() string     { return "task-cli list [todo|in-progress|done]" }
func (c *ListCmd) NeedsAuth() bool   { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	status, ok := parseStatusArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	tasks, err := deps.Tasks.Load()
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return reportStoreError(errOut, err)
		}
		// Listing never writes, so show the empty view and keep the file.
		fmt.Fprintf(errOut, "warning: %v\n", err)
	}

	count := 0
	for pos, task := range selectTasks(tasks, status) {
		output.FormatTask(out, pos, task)
		count++
	}

	if count == 0 && !cfg.Quiet {
		output.FormatEmpty(out, status)
	}
	return exitcode.Success
}

// parseStatusArg parses an optional single status argument.
func parseStatusArg(args []string, errOut io.Writer) (service.Status, bool) {
	switch len(args) {
	case 0:
		return "", true
	case 1:
		status, err := service.ParseStatus(args[0])
		if err != nil {
			fmt.Fprintf(errOut, "error: %v (want %s)\n", err, statusChoices())
			return "", false
		}
		return status, true
	default:
		fmt.Fprintf(errOut, "error: too many arguments: %s\n", strings.Join(args[1:], " "))
		return "", false
	}
}

// selectTasks returns all tasks, or those with status when it is set.
func selectTasks(tasks []service.Task, status service.Status) iter.Seq2[int, service.Task] {
	if status == "" {
		return store.ListAll(tasks)
	}
	return store.ListByStatus(tasks, status)
}

func statusChoices() string {
	names := make([]string, len(service.Statuses))
	for i, st := range service.Statuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}
