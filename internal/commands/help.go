package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "task-cli help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	WriteUsage(out, DefaultRegistry)
	return exitcode.Success
}

// WriteUsage prints the usage of every command in r.
func WriteUsage(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "Usage:")
	for _, cmd := range r.All() {
		line := "  " + cmd.Usage()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			line += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "      %s\n", cmd.Synopsis())
	}
	fmt.Fprint(w, helpFooter)
}

const helpFooter = `
<ref> is a task id or the task's number in 'task-cli list'.
Numbers shift after a delete; ids never change.

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override the task file (also TASK_CLI_FILE)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
