package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mouse-blink/gorep/internal/adapter"
	m "github.com/mouse-blink/gorep/internal/model"
)

// Walker enumerates the regular files reachable from a root path.
type Walker interface {
	// Enumerate returns every regular file under root in lexical depth-first
	// order, including symlinks that resolve to regular files. A root that
	// does not exist yields an empty result, not an error.
	Enumerate(root m.Path, policy m.FileErrorPolicy) ([]m.Path, error)
}

type walker struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *log.Logger
}

// NewWalker constructs a Walker on top of the provided filesystem adapter.
func NewWalker(fsAdapter adapter.SourceFSAdapter, logger *log.Logger) Walker {
	return &walker{
		fsAdapter: fsAdapter,
		logger:    logger,
	}
}

func (w *walker) Enumerate(root m.Path, policy m.FileErrorPolicy) ([]m.Path, error) {
	if _, err := w.fsAdapter.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Warn("root directory does not exist", "root", root)
			return []m.Path{}, nil
		}

		if policy == m.PolicyAbort {
			return nil, fmt.Errorf("%w: %s: %w", ErrEnumerate, root, err)
		}

		w.logger.Warn("skipping unreadable root", "root", root, "error", err)

		return []m.Path{}, nil
	}

	files := []m.Path{}

	err := w.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return w.handleWalkError(path, info, err, policy)
		}

		if info.IsDir() {
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			if w.linksToRegularFile(path) {
				files = append(files, m.Path(path))
			}

			return nil
		}

		// Devices, sockets and pipes.
		if !info.Mode().IsRegular() {
			w.logger.Debug("skipping non-regular entry", "path", path, "mode", info.Mode().String())
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// linksToRegularFile reports whether the symlink at path resolves to a
// regular file. Linked directories are never descended into.
func (w *walker) linksToRegularFile(path string) bool {
	target, err := w.fsAdapter.Stat(m.Path(path))
	if err != nil {
		w.logger.Debug("skipping dangling symlink", "path", path, "error", err)
		return false
	}

	if !target.Mode().IsRegular() {
		w.logger.Debug("not following symlink", "path", path, "mode", target.Mode().String())
		return false
	}

	return true
}

func (w *walker) handleWalkError(path string, info os.FileInfo, err error, policy m.FileErrorPolicy) error {
	if policy == m.PolicyAbort {
		return fmt.Errorf("%w: %s: %w", ErrEnumerate, path, err)
	}

	w.logger.Warn("skipping unreadable entry", "path", path, "error", err)

	if info != nil && info.IsDir() {
		return filepath.SkipDir
	}

	return nil
}
