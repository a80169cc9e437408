package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// AcquireRunLock takes an exclusive file lock so two concurrent runs cannot
// rename files in the same tree. The returned release function must be
// called when the run finishes.
func AcquireRunLock(path string) (func(), error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create lock directory: %w", err)
		}
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another fansort run is already in progress (lock held at " + path + ")")
	}
	return func() { _ = lock.Unlock() }, nil
}
