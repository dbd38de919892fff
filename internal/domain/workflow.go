// Package domain implements the search pipeline: pattern compilation, tree
// enumeration, line matching and result writing.
package domain

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mouse-blink/gorep/internal/adapter"
	"github.com/mouse-blink/gorep/internal/controller"
	m "github.com/mouse-blink/gorep/internal/model"
)

// ProcessArgs holds the inputs of a single search run.
type ProcessArgs struct {
	Pattern     string
	Root        m.Path
	Output      m.Path
	Syntax      m.Syntax
	OnFileError m.FileErrorPolicy
	Quiet       bool
}

// Workflow defines the search operation.
type Workflow interface {
	// Process compiles the pattern, enumerates the files under Root, collects
	// every matching line in file-then-line order and writes them to Output
	// in a single step.
	Process(args ProcessArgs) (m.Summary, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.ResultStore
	walker    Walker
	ui        controller.UI
	logger    *log.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.ResultStore,
	ui controller.UI,
	logger *log.Logger,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		walker:    NewWalker(fsAdapter, logger),
		ui:        ui,
		logger:    logger,
	}
}

func (w *workflow) Process(args ProcessArgs) (m.Summary, error) {
	w.logger.Info("starting search", "regex", args.Pattern, "root", args.Root, "output", args.Output)

	policy := args.OnFileError
	if policy == "" {
		policy = m.PolicySkip
	}

	if !policy.Valid() {
		return m.Summary{}, fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}

	matcher, err := CompilePattern(args.Pattern, args.Syntax)
	if err != nil {
		return m.Summary{}, err
	}

	files, err := w.walker.Enumerate(args.Root, policy)
	if err != nil {
		return m.Summary{}, err
	}

	w.logger.Debug("enumerated files", "root", args.Root, "count", len(files))

	summary := m.Summary{
		Pattern: matcher.String(),
		Root:    args.Root,
		Output:  args.Output,
		Files:   make([]m.FileResult, 0, len(files)),
		Matched: []string{},
	}

	for _, file := range files {
		result, matched, err := w.searchFile(file, matcher, policy)
		if err != nil {
			return m.Summary{}, err
		}

		summary.Files = append(summary.Files, result)
		summary.Matched = append(summary.Matched, matched...)
	}

	w.logger.Info("total matched lines", "count", len(summary.Matched))

	if err := w.store.SaveLines(args.Output, summary.Matched); err != nil {
		return m.Summary{}, fmt.Errorf("%w: %s: %w", ErrWriteResults, args.Output, err)
	}

	w.logger.Info("finished writing output", "output", args.Output)

	if args.Quiet || w.ui == nil {
		return summary, nil
	}

	if err := w.ui.DisplaySummary(summary); err != nil {
		return summary, err
	}

	return summary, nil
}

// searchFile reads the whole file before matching any of its lines.
func (w *workflow) searchFile(path m.Path, matcher Matcher, policy m.FileErrorPolicy) (m.FileResult, []string, error) {
	lines, err := w.fsAdapter.ReadLines(path)
	if err != nil {
		if policy == m.PolicyAbort {
			return m.FileResult{}, nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
		}

		w.logger.Warn("skipping unreadable file", "path", path, "error", err)

		return m.FileResult{Path: path, Skipped: true, Err: err}, nil, nil
	}

	var matched []string

	for _, line := range lines {
		if matcher.Matches(line) {
			matched = append(matched, line)
		}
	}

	return m.FileResult{Path: path, Lines: len(lines), Matches: len(matched)}, matched, nil
}
