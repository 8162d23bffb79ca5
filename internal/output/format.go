// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"taskcli/internal/service"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [{STATUS}] {DESCRIPTION} (ID: {ID}, Created: {RFC3339})\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  [%s] %s (ID: %s, Created: %s)\n",
		num,
		strings.ToUpper(string(task.Status)),
		NormalizeDescription(task.Description),
		task.ID,
		task.CreatedAt.Format(time.RFC3339),
	)
}

// FormatOutcome formats the result line of a mutating command.
// Format: "{VERB}: \"{DESCRIPTION}\"\n"
func FormatOutcome(w io.Writer, verb string, task service.Task) {
	fmt.Fprintf(w, "%s: %q\n", verb, NormalizeDescription(task.Description))
}

// FormatAdded formats the result line of add, which also shows the new id.
func FormatAdded(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "added: %q (ID: %s)\n", NormalizeDescription(task.Description), task.ID)
}

// FormatEmpty formats the note printed when a listing has no tasks.
// An empty status means the unfiltered listing.
func FormatEmpty(w io.Writer, status service.Status) {
	if status == "" {
		fmt.Fprintln(w, "no tasks found")
		return
	}
	fmt.Fprintf(w, "no tasks with status: %s\n", status)
}

// NormalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
