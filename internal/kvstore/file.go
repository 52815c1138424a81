package kvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// File implements types.KV with one <key>.json document per key under a
// data directory. Writes use the temp-file, fsync, rename pattern so a
// crash mid-write never leaves a torn document behind.
type File struct {
	mu      sync.Mutex
	dataDir string
	closed  bool
}

// OpenFile opens a file-backed store rooted at dataDir, creating the
// directory if needed.
func OpenFile(dataDir string) (*File, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &File{dataDir: dataDir}, nil
}

// path maps a key to its document path.
func (f *File) path(key string) string {
	return filepath.Join(f.dataDir, key+".json")
}

// Get returns the document stored under key, or ok=false when absent.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", false, types.ErrStoreClosed
	}

	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set atomically writes value under key.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return types.ErrStoreClosed
	}

	if err := writeFileAtomic(f.path(key), []byte(value)); err != nil {
		if isNoSpaceError(err) {
			return fmt.Errorf("writing key %q: %w", key, types.ErrCapacityExceeded)
		}
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes the document for key. Absent keys are a no-op.
func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return types.ErrStoreClosed
	}

	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// Clear removes every stored document under the data dir.
func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return types.ErrStoreClosed
	}

	entries, err := os.ReadDir(f.dataDir)
	if err != nil {
		return fmt.Errorf("listing data dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(f.dataDir, entry.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Close marks the store closed. Idempotent.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory, fsyncs, then renames over the destination.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kv-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// isNoSpaceError reports whether err indicates the filesystem is full.
func isNoSpaceError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "no space left on device")
}
