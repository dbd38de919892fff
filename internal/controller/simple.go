package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/gorep/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints a plain table of searched files.
func (s *SimpleUI) DisplaySummary(summary m.Summary) error {
	if len(summary.Files) == 0 {
		s.printf("No files found under %s\n", summary.Root)
		s.printf("Wrote 0 matched lines to %s\n", summary.Output)

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Matches"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, row := range summaryRows(summary) {
		table.Append(row)
	}

	table.SetFooter(summaryFooter(summary))

	table.Render()
	s.printf("\n%s", tableBuffer.String())
	s.printf("Wrote %d matched lines to %s\n", summary.TotalMatches(), summary.Output)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// summaryRows renders one row per file. Skipped files show no counts.
func summaryRows(summary m.Summary) [][]string {
	rows := make([][]string, 0, len(summary.Files))

	for _, file := range summary.Files {
		if file.Skipped {
			rows = append(rows, []string{string(file.Path), "-", "skipped"})
			continue
		}

		rows = append(rows, []string{
			string(file.Path),
			fmt.Sprintf("%d", file.Lines),
			fmt.Sprintf("%d", file.Matches),
		})
	}

	return rows
}

func summaryFooter(summary m.Summary) []string {
	return []string{
		fmt.Sprintf("Total Files %d", len(summary.Files)),
		fmt.Sprintf("%d", summary.TotalLines()),
		fmt.Sprintf("%d", summary.TotalMatches()),
	}
}
