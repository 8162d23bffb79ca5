// Package report renders task listings as PDF documents.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"taskcli/internal/output"
	"taskcli/internal/service"
)

// Entry is one line of a report: a task and its position in the store.
type Entry struct {
	Position int
	Task     service.Task
}

// WritePDF renders an A4 report of entries to w.
func WritePDF(w io.Writer, title string, generated time.Time, entries []Entry) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d tasks", generated.Format(time.RFC3339), len(entries)))
	pdf.Ln(10)

	// The core fonts are cp1252; translate so accented text survives.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "", 10)
	for _, e := range entries {
		line := fmt.Sprintf("%d. [%s] %s",
			e.Position,
			strings.ToUpper(string(e.Task.Status)),
			output.NormalizeDescription(e.Task.Description),
		)
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)

		pdf.SetFont("Arial", "I", 8)
		pdf.MultiCell(0, 5, fmt.Sprintf("ID: %s  Created: %s  Updated: %s",
			e.Task.ID,
			e.Task.CreatedAt.Format(time.RFC3339),
			e.Task.UpdatedAt.Format(time.RFC3339),
		), "0", "L", false)
		pdf.SetFont("Arial", "", 10)
		pdf.Ln(1)
	}

	return pdf.Output(w)
}
