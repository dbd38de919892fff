package adapter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/gorep/internal/model"
	"github.com/spf13/afero"
)

const (
	outputFileMode = 0o644
	outputDirMode  = 0o750

	maxSymlinkHops = 40
)

// ResultStore persists matched lines to a destination file.
type ResultStore interface {
	// SaveLines creates or truncates path and writes each line followed by
	// "\n". Either every line is written or the destination is left as it was.
	// An existing destination keeps its permissions, and a symlinked one has
	// its target replaced.
	SaveLines(path m.Path, lines []string) error
}

type resultStore struct {
	fs     afero.Fs
	locker Locker
}

// NewResultStore constructs a ResultStore writing through fs. Writes to the
// same destination are serialized through locker.
func NewResultStore(fs afero.Fs, locker Locker) ResultStore {
	if locker == nil {
		locker = NoopLocker{}
	}

	return &resultStore{fs: fs, locker: locker}
}

// NewLocalResultStore constructs a ResultStore backed by the OS filesystem.
// When lock is true an advisory lock file guards each write.
func NewLocalResultStore(lock bool) ResultStore {
	var locker Locker = NoopLocker{}
	if lock {
		locker = NewFileLocker()
	}

	return NewResultStore(afero.NewOsFs(), locker)
}

func (rs *resultStore) SaveLines(path m.Path, lines []string) (err error) {
	unlock, err := rs.locker.Lock(path)
	if err != nil {
		return err
	}

	defer func() {
		if unlockErr := unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}()

	dest, err := rs.resolveDestination(string(path))
	if err != nil {
		return err
	}

	return rs.atomicWrite(dest, lines)
}

// resolveDestination follows symlinks at path so the rename replaces the
// link's target rather than the link itself.
func (rs *resultStore) resolveDestination(path string) (string, error) {
	lstater, canLstat := rs.fs.(afero.Lstater)
	reader, canReadLink := rs.fs.(afero.LinkReader)

	if !canLstat || !canReadLink {
		return path, nil
	}

	current := path

	for range maxSymlinkHops {
		info, _, err := lstater.LstatIfPossible(current)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return current, nil
		}

		target, err := reader.ReadlinkIfPossible(current)
		if err != nil {
			return "", fmt.Errorf("failed to read link %s: %w", current, err)
		}

		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}

		current = target
	}

	return "", fmt.Errorf("too many levels of symbolic links at %s", path)
}

// destinationMode returns the permissions of an existing regular file at
// path, or outputFileMode for a new one.
func (rs *resultStore) destinationMode(path string) os.FileMode {
	info, err := rs.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return outputFileMode
	}

	return info.Mode().Perm()
}

// atomicWrite writes to a temp file in the destination directory and renames
// it over path, so readers never observe a partially written file.
func (rs *resultStore) atomicWrite(path string, lines []string) error {
	dir := filepath.Dir(path)
	if err := rs.fs.MkdirAll(dir, outputDirMode); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	mode := rs.destinationMode(path)

	tmp, err := afero.TempFile(rs.fs, dir, ".gorep-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = rs.fs.Remove(tmpPath)
		}
	}()

	writer := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := writer.WriteString(line); err != nil {
			return fmt.Errorf("failed to write to temp file: %w", err)
		}

		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write to temp file: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := rs.fs.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := rs.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	committed = true

	return nil
}
