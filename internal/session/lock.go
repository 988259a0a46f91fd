package session

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrOutputBusy is returned when another mkvedit process is writing the same output.
var ErrOutputBusy = errors.New("output file is being written by another mkvedit process")

// outputLock serializes remuxes that target the same output path.
type outputLock struct {
	path string
	lock *flock.Flock
}

// lockPath derives a lock file name in dir from the absolute output path.
func lockPath(dir, output string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	abs, err := filepath.Abs(output)
	if err != nil {
		abs = output
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(dir, "mkvedit-"+hex.EncodeToString(sum[:8])+".lock")
}

func acquireOutputLock(dir, output string) (*outputLock, error) {
	path := lockPath(dir, output)
	l := &outputLock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, ErrOutputBusy
	}
	return l, nil
}

func (l *outputLock) release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
