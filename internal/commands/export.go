package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/report"
	"taskcli/internal/service"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	status string
}

// SetStatus sets the status filter (for testing).
func (c *ExportCmd) SetStatus(status string) {
	c.status = status
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write tasks to a PDF report" }
func (c *ExportCmd) Usage() string     { return "task-cli export [--status <status>] <file.pdf>" }
func (c *ExportCmd) NeedsAuth() bool   { return false }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: output file required")
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: too many arguments: %s\n", strings.Join(args[1:], " "))
		return exitcode.UserError
	}
	path := args[0]

	var status service.Status
	if c.status != "" {
		var ok bool
		if status, ok = parseStatusArg([]string{c.status}, errOut); !ok {
			return exitcode.UserError
		}
	}

	// A corrupt store is an error here: an empty report would look valid.
	tasks, err := deps.Tasks.Load()
	if err != nil {
		return reportStoreError(errOut, err)
	}

	var entries []report.Entry
	for pos, task := range selectTasks(tasks, status) {
		entries = append(entries, report.Entry{Position: pos, Task: task})
	}

	title := "Tasks"
	if status != "" {
		title = "Tasks: " + string(status)
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := report.WritePDF(f, title, time.Now(), entries); err != nil {
		f.Close()
		fmt.Fprintf(errOut, "error: failed to write report: %v\n", err)
		return exitcode.StoreError
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(errOut, "error: failed to write report: %v\n", err)
		return exitcode.StoreError
	}

	cfg.Log.WithField("path", path).WithField("count", len(entries)).Debug("report written")
	if !cfg.Quiet {
		fmt.Fprintf(out, "exported: %d tasks to %s\n", len(entries), path)
	}
	return exitcode.Success
}
