package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ticket-value-alert/utils"
)

// FileStore persists the seen-fingerprint set as a sorted JSON array.
// It is safe for concurrent use.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *utils.Logger
}

// NewFileStore creates a FileStore at the given path. Intermediate
// directories are created automatically.
func NewFileStore(path string, logger *utils.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("filestore: create state dir: %w", err)
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Load reads the persisted fingerprint set. Any read or decode failure is
// logged and reported as an empty set so a corrupt or missing state file
// never blocks startup.
func (f *FileStore) Load() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("[filestore] Read %s failed: %v — starting with empty set", f.path, err)
		}
		return nil
	}

	var fingerprints []string
	if err := json.Unmarshal(data, &fingerprints); err != nil {
		f.logger.Warn("[filestore] Decode %s failed: %v — starting with empty set", f.path, err)
		return nil
	}
	return fingerprints
}

// Save writes the fingerprint set. The write goes through a temp file and a
// rename so a crash mid-write cannot leave a truncated state file.
func (f *FileStore) Save(fingerprints []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(fingerprints, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("filestore: write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("filestore: rename: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between saves.
func (f *FileStore) Close() error { return nil }
