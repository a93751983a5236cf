// Package filelock takes shared advisory locks on input files while they are read.
//
// Files are opened read-only. A writer holding an exclusive flock(2) or
// LockFileEx lock blocks the reader until it finishes or the timeout expires.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
)

// ErrLockTimeout is returned when the shared lock is not granted in time
var ErrLockTimeout = errors.New("timed out waiting for file lock")

// retryDelay is the polling interval while waiting for a held lock
const retryDelay = 50 * time.Millisecond

// ReadLock wraps a flock shared lock on an existing file.
type ReadLock struct {
	flock *flock.Flock
	path  string
}

// NewReadLock creates a shared lock for the file at path.
// The file must already exist.
func NewReadLock(path string) *ReadLock {
	return &ReadLock{
		flock: flock.New(path, flock.SetFlag(os.O_RDONLY)),
		path:  path,
	}
}

// Acquire waits up to timeout for the shared lock.
// A timeout of zero tries once without waiting.
func (l *ReadLock) Acquire(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		acquired, err := l.flock.TryRLock()
		if err != nil {
			return fmt.Errorf("failed to try lock on %s: %w", l.path, err)
		}
		if !acquired {
			return fmt.Errorf("%s: %w", l.path, ErrLockTimeout)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	acquired, err := l.flock.TryRLockContext(ctx, retryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", l.path, ErrLockTimeout)
		}
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !acquired {
		return fmt.Errorf("%s: %w", l.path, ErrLockTimeout)
	}
	return nil
}

// Release unlocks and closes the underlying file handle.
func (l *ReadLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// WithReadLock runs fn while holding a shared lock on path.
func WithReadLock(ctx context.Context, path string, timeout time.Duration, fn func() error) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	lock := NewReadLock(path)
	if err := lock.Acquire(ctx, timeout); err != nil {
		return err
	}
	defer lock.Release()

	return fn()
}
