package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/gorep/internal/model"
	"github.com/spf13/cobra"
)

func testSummary() m.Summary {
	return m.Summary{
		Pattern: "apple",
		Root:    "data",
		Output:  "out.txt",
		Files: []m.FileResult{
			{Path: "data/f1.txt", Lines: 2, Matches: 1},
			{Path: "data/f2.txt", Lines: 3, Matches: 1},
			{Path: "data/locked.txt", Skipped: true, Err: errors.New("permission denied")},
		},
		Matched: []string{"apple", "pineapple"},
	}
}

func TestSimpleUI_DisplaySummary_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplaySummary(testSummary()); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"data/f1.txt",
		"data/f2.txt",
		"data/locked.txt",
		"skipped",
		"TOTAL FILES 3",
		"5",
		"Wrote 2 matched lines to out.txt",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySummary_NoFiles(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	err := ui.DisplaySummary(m.Summary{Root: "empty", Output: "out.txt", Matched: []string{}})
	if err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "No files found under empty") {
		t.Fatalf("expected empty message, got %q", output)
	}

	if strings.Contains(output, "TOTAL FILES") {
		t.Fatalf("did not expect a table, got %q", output)
	}
}
