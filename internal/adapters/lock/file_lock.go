package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
)

// FileLock implements ports.InstanceLock with an OS-level exclusive file lock
type FileLock struct {
	file *os.File
	mu   sync.Mutex
	path string
}

// Verify interface compliance at compile time
var _ ports.InstanceLock = (*FileLock)(nil)

// NewFileLock creates a lock backed by the file at path
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// TryLock acquires the lock without blocking and writes the owner PID into the file
func (l *FileLock) TryLock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		owner := readOwner(file)
		file.Close()
		logging.Logger.Warn("Lock held by another process", "path", l.path, "owner_pid", owner, "error", err)
		if owner != "" {
			return fmt.Errorf("%w (pid %s)", domain.ErrInstanceRunning, owner)
		}
		return domain.ErrInstanceRunning
	}

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	l.file = file
	logging.Logger.Debug("Acquired instance lock", "path", l.path)
	return nil
}

// Unlock releases the lock. Unlocking a lock that is not held is a no-op.
func (l *FileLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	err := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil

	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close lock file: %w", closeErr)
	}
	logging.Logger.Debug("Released instance lock", "path", l.path)
	return nil
}

func readOwner(file *os.File) string {
	buf := make([]byte, 32)
	n, _ := file.ReadAt(buf, 0)
	return strings.TrimSpace(string(buf[:n]))
}
