package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/wbagent-labs/wbagent/internal/platform"
)

// Writer is the filesystem capability the generator writes through.
type Writer interface {
	MkdirAll(path string) error
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// FSWriter writes to the real filesystem.
type FSWriter struct{}

// MkdirAll creates path and any missing parents.
func (FSWriter) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// WriteFile creates parent directories and writes data. Files with any
// execute bit in perm are made executable even when they already existed.
func (w FSWriter) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := w.MkdirAll(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if perm&0111 != 0 {
		if err := platform.MakeExecutable(path); err != nil {
			return fmt.Errorf("marking %s executable: %w", path, err)
		}
	}
	return nil
}

// DryRunWriter records what would be written without touching disk.
type DryRunWriter struct {
	mu    sync.Mutex
	dirs  []string
	files []string
}

// MkdirAll records path.
func (w *DryRunWriter) MkdirAll(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dirs = append(w.dirs, path)
	return nil
}

// WriteFile records path.
func (w *DryRunWriter) WriteFile(path string, _ []byte, _ os.FileMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files = append(w.files, path)
	return nil
}

// Dirs returns the recorded directories in call order.
func (w *DryRunWriter) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.dirs...)
}

// Files returns the recorded file paths in call order.
func (w *DryRunWriter) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.files...)
}
