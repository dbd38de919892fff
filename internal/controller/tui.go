package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/gorep/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	totalStyle   = lipgloss.NewStyle().Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

const minColumnWidth = 7

// TUI implements UI with a styled table for interactive terminals.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySummary renders the per-file table followed by totals.
func (t *TUI) DisplaySummary(summary m.Summary) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("gorep %q in %s", summary.Pattern, summary.Root)))
	b.WriteString("\n")

	if len(summary.Files) == 0 {
		b.WriteString(faintStyle.Render("No files found"))
		b.WriteString("\n")
	} else {
		b.WriteString(renderTable(summaryRows(summary)))
		b.WriteString("\n")
	}

	totals := fmt.Sprintf("%d files, %d lines, %d matches", len(summary.Files), summary.TotalLines(), summary.TotalMatches())
	b.WriteString(totalStyle.Render(totals))
	b.WriteString("\n")

	if skipped := summary.SkippedFiles(); len(skipped) > 0 {
		b.WriteString(skippedStyle.Render(fmt.Sprintf("%d files skipped", len(skipped))))
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render("output: " + string(summary.Output)))
	b.WriteString("\n")

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

func renderTable(rows [][]string) string {
	headers := []string{"Path", "Lines", "Matches"}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(lipgloss.Width(h), minColumnWidth)
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}

		tableRows = append(tableRows, table.Row(row))
	}

	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	totalWidth := 0
	for _, w := range widths {
		totalWidth += w + 2 // cell padding
	}

	// Styles go first: the height option subtracts the rendered header.
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithStyles(styles),
		table.WithFocused(false),
		table.WithWidth(totalWidth),
		table.WithHeight(len(tableRows)+2),
	)

	return tbl.View()
}
