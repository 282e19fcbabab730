// Package commentstore persists comment threads for hosts of the structedit
// library. The reducer's CreateComment effect deliberately leaves persistence
// to the host; this package is one such host-side implementation, a single
// JSON file holding every thread keyed by serialized path, written
// atomically so a crash mid-save never leaves a truncated file behind.
package commentstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joeycumines/structedit"
)

// CurrentSchemaVersion is written to every saved file, for
// forward-compatibility should the layout change.
const CurrentSchemaVersion = "1.0.0"

// fileSchema is the on-disk layout.
type fileSchema struct {
	Version   string                          `json:"version"`
	UpdatedAt time.Time                       `json:"updated_at"`
	Threads   map[string][]structedit.Comment `json:"threads"`
}

// Store is a file-backed comment log. Append is safe for concurrent use
// within one process; cross-process locking is out of scope (the atomic
// rename keeps the file well-formed regardless).
type Store struct {
	path   string
	logger *slog.Logger

	mu      sync.Mutex
	threads map[string][]structedit.Comment
}

// Open loads (or initializes) the store at path. A missing file is not an
// error; it yields an empty store. logger may be nil.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Store{
		path:    path,
		logger:  logger,
		threads: map[string][]structedit.Comment{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read comment store: %w", err)
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal comment store: %w", err)
	}
	if file.Threads != nil {
		s.threads = file.Threads
	}
	logger.Debug("loaded comment store", "path", path, "threads", len(s.threads))
	return s, nil
}

// Threads returns a copy of every stored thread, keyed by serialized path
// and ordered oldest first — the shape structedit.InitState accepts.
func (s *Store) Threads() map[string][]structedit.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]structedit.Comment, len(s.threads))
	for key, thread := range s.threads {
		out[key] = append([]structedit.Comment(nil), thread...)
	}
	return out
}

// Append adds a comment to the thread at key and persists the whole store.
// On write failure the in-memory store is left unchanged, so a retry
// observes the pre-failure state.
func (s *Store) Append(key string, c structedit.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := s.threads[key]
	next := append(thread[:len(thread):len(thread)], c)

	prev := s.threads[key]
	s.threads[key] = next
	if err := s.saveLocked(); err != nil {
		if prev == nil {
			delete(s.threads, key)
		} else {
			s.threads[key] = prev
		}
		return fmt.Errorf("failed to persist comment: %w", err)
	}

	s.logger.Debug("persisted comment", "key", key, "thread_len", len(next))
	return nil
}

func (s *Store) saveLocked() error {
	file := fileSchema{
		Version:   CurrentSchemaVersion,
		UpdatedAt: time.Now(),
		Threads:   s.threads,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comment store: %w", err)
	}
	if err := atomicWriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write comment store: %w", err)
	}
	return nil
}

// atomicWriteFile safely writes data by using a temporary file and an atomic
// rename.
func atomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Create the temp file in the same directory to guarantee the rename is
	// atomic.
	tempFile, err := os.CreateTemp(dir, ".tmp-comments-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	var success bool
	defer func() {
		if !success {
			if err := os.Remove(tempFile.Name()); err != nil {
				slog.Warn("failed to remove temporary file", "path", tempFile.Name(), "error", err)
			}
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file %q: %w", tempFile.Name(), err)
	}
	if err := os.Chmod(tempFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tempFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	success = true
	return nil
}
