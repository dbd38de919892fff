// Package adapter contains filesystem and output adapters for the gorep CLI.
package adapter

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/gorep/internal/model"
	"github.com/spf13/afero"
)

// SourceFSAdapter abstracts the filesystem reads the domain layer relies on
// when scanning a tree. It hides direct `os` access so the search logic can
// be tested against an in-memory filesystem.
type SourceFSAdapter interface {
	// Walk traverses root depth-first. Siblings are visited in lexical order.
	// A root that is a symbolic link to a directory is descended into; links
	// below the root are reported, never followed.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadLines loads the whole file and splits it into lines. Terminators
	// ("\n", "\r\n" or a lone "\r") are stripped.
	ReadLines(path m.Path) ([]string, error)

	// FileInfo returns metadata for a path without following a trailing
	// symbolic link.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Stat returns metadata for the entry path resolves to, following
	// symbolic links.
	Stat(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on top of an afero.Fs.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter backed by the OS filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter backed by the provided filesystem.
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// Walk iterates over every entry under root, descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	start := string(root)
	if a.isLinkToDir(start) {
		// Lstat resolves "link/", so afero descends into the target while
		// child paths keep the link as their prefix.
		start = strings.TrimRight(start, string(filepath.Separator)) + string(filepath.Separator)
	}

	err := afero.Walk(a.fs, start, filepath.WalkFunc(fn))
	// afero propagates a SkipDir returned for the root itself.
	if errors.Is(err, filepath.SkipDir) {
		return nil
	}

	return err
}

// ReadLines reads the file at path and returns its lines in order.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	f, err := a.fs.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	return readLines(f)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(string(path))
		return info, err
	}

	return a.fs.Stat(string(path))
}

// Stat returns os.FileInfo metadata for the target of path.
func (a *LocalSourceFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

func (a *LocalSourceFSAdapter) isLinkToDir(path string) bool {
	info, err := a.FileInfo(m.Path(path))
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := a.fs.Stat(path)

	return err == nil && target.IsDir()
}

// readLines splits r into lines without a line length limit. "\n", "\r\n"
// and a lone "\r" all end a line. A final line without a terminator is kept;
// a trailing terminator does not produce an extra empty line.
func readLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)

	var lines []string

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		if line == "" && err != nil {
			break
		}

		// A "\r" left at the end is either half of "\r\n" or a lone
		// terminator at EOF; both end the last line of the chunk.
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, strings.Split(line, "\r")...)

		if err != nil {
			break
		}
	}

	return lines, nil
}
