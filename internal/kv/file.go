// ABOUTME: JSON-file backed Store: one object of string keys, written atomically
// ABOUTME: Writes go to a temp file in the same directory, then rename; 0600 perms

package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	pilog "github.com/mauromedda/themeswitch-go/internal/log"
)

// ErrCorrupt reports a state file that exists but is not an object of strings.
var ErrCorrupt = errors.New("kv: state file is not a JSON object of strings")

// FileStore persists keys in a single JSON object on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The file and its directory are
// created lazily on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the value for key. A missing file behaves like an empty store.
func (f *FileStore) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.readLocked()
	if err != nil {
		return "", err
	}
	v, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key and flushes the whole file. An unreadable file
// is moved aside to <path>.bad and replaced by a fresh one.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.readLocked()
	if errors.Is(err, ErrCorrupt) {
		data, err = f.quarantineLocked(err)
	}
	if err != nil {
		return err
	}
	data[key] = value
	return f.writeLocked(data)
}

// readLocked loads the file. Must hold mu.
func (f *FileStore) readLocked() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	data := make(map[string]string)
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w: %w", f.path, ErrCorrupt, err)
	}
	return data, nil
}

// quarantineLocked renames the corrupt file out of the way and returns an
// empty map to write into. Must hold mu.
func (f *FileStore) quarantineLocked(cause error) (map[string]string, error) {
	bad := f.path + ".bad"
	if err := os.Rename(f.path, bad); err != nil {
		return nil, fmt.Errorf("moving aside state file: %w", err)
	}
	pilog.Warn("kv: %v; moved to %s", cause, bad)
	return make(map[string]string), nil
}

// writeLocked replaces the file contents atomically. Must hold mu.
func (f *FileStore) writeLocked(data map[string]string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("setting state file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
