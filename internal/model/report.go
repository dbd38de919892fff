package model

// FileResult holds the outcome of searching a single file.
type FileResult struct {
	Path    Path
	Lines   int   // number of lines read
	Matches int   // number of lines that matched
	Skipped bool  // true if the file could not be read and was left out
	Err     error // read error that caused the skip
}

// Summary describes a completed search run.
type Summary struct {
	Pattern string
	Root    Path
	Output  Path
	Files   []FileResult
	Matched []string
}

// TotalLines returns the number of lines read across all files.
func (s Summary) TotalLines() int {
	total := 0
	for _, f := range s.Files {
		total += f.Lines
	}

	return total
}

// TotalMatches returns the number of matched lines written to the output.
func (s Summary) TotalMatches() int {
	return len(s.Matched)
}

// SkippedFiles returns the files that were left out because of read errors.
func (s Summary) SkippedFiles() []FileResult {
	var skipped []FileResult

	for _, f := range s.Files {
		if f.Skipped {
			skipped = append(skipped, f)
		}
	}

	return skipped
}
