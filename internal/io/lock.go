package ioutils

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the run lock.
var ErrLocked = errors.New("another run holds the lock")

// RunLock is an exclusive advisory lock held for the duration of a run.
//
// Two processes writing into the same output root could both see a file as
// missing and both download it. Holding the lock keeps a second process out
// of the output root for the whole run. Workers within one run are kept
// apart by the download manager, not by this lock.
type RunLock struct {
	lock *flock.Flock
}

// AcquireRunLock takes the lock file at path without blocking.
//
// Example:
//
//	lock, err := ioutils.AcquireRunLock(filepath.Join(root, ".modrinth-dl.lock"))
//	if errors.Is(err, ioutils.ErrLocked) {
//	    // another instance is running against the same directory
//	}
//	defer lock.Release()
func AcquireRunLock(path string) (*RunLock, error) {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &RunLock{lock: fl}, nil
}

// Release drops the lock. It is safe to call on a nil RunLock.
func (l *RunLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
