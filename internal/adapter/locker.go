package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	m "github.com/mouse-blink/gorep/internal/model"
)

// Locker serializes writers of the same destination across processes.
type Locker interface {
	// Lock blocks until the lock for path is held and returns the function
	// that releases it.
	Lock(path m.Path) (unlock func() error, err error)
}

// NoopLocker never blocks. It is used when locking is disabled and for
// in-memory filesystems.
type NoopLocker struct{}

// Lock returns immediately.
func (NoopLocker) Lock(_ m.Path) (func() error, error) {
	return func() error { return nil }, nil
}

// FileLocker takes an exclusive flock on a sibling "<path>.lock" file.
// The lock file is left in place after release; removing it would let a
// waiting process lock an unlinked inode.
type FileLocker struct{}

// NewFileLocker constructs a FileLocker.
func NewFileLocker() FileLocker {
	return FileLocker{}
}

// Lock acquires the exclusive lock for path.
func (FileLocker) Lock(path m.Path) (func() error, error) {
	lockPath := string(path) + ".lock"

	if err := os.MkdirAll(filepath.Dir(lockPath), outputDirMode); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", lockPath, err)
	}

	fl := flock.New(lockPath)
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock on %s: %w", lockPath, err)
	}

	return func() error {
		if err := fl.Unlock(); err != nil {
			return fmt.Errorf("failed to release lock on %s: %w", lockPath, err)
		}

		return nil
	}, nil
}
