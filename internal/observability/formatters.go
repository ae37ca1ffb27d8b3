// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/mission-reporter/internal/export"
	"github.com/jonathan/mission-reporter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintConfiguration outputs a summary of the active template selection.
func (p *Printer) PrintConfiguration(cfg *types.ExportConfiguration) {
	if cfg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Active template:  %s\n", cfg.ActiveTemplateID))
	sb.WriteString(fmt.Sprintf("Custom templates: %d\n", len(cfg.CustomTemplates)))

	count := min(len(cfg.CustomTemplates), maxItemsToShow)
	for i := 0; i < count; i++ {
		tpl := cfg.CustomTemplates[i]
		name := tpl.Name
		if name == "" {
			name = "(unnamed)"
		}
		sb.WriteString(fmt.Sprintf("  • %s [%s]\n", name, tpl.ID))
	}
	if len(cfg.CustomTemplates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cfg.CustomTemplates)-maxItemsToShow))
	}

	p.printBox("Template Configuration", sb.String())
}

// PrintExportReport outputs a human-readable summary of one batch export.
func (p *Printer) PrintExportReport(result *export.ExportResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Archive:   %s\n", result.Filename))
	sb.WriteString(fmt.Sprintf("Selected:  %d\n", result.Report.Selected))
	sb.WriteString(fmt.Sprintf("Rendered:  %d\n", result.Report.Succeeded()))
	sb.WriteString(fmt.Sprintf("Skipped:   %d\n", result.Report.Failed()))

	shown := 0
	for _, item := range result.Report.Items {
		if item.Err == nil {
			continue
		}
		if shown == maxItemsToShow {
			sb.WriteString("  ... more skipped items omitted\n")
			break
		}
		sb.WriteString(fmt.Sprintf("  ✗ %s: %v\n", item.Title, item.Err))
		shown++
	}

	p.printBox("Batch Export", sb.String())
}
