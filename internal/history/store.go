// Package history persists conversation turns per session as YAML files.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"rtutor/pkg/schema"
)

// Store handles file I/O for the session history directory. One YAML file per
// session, written atomically via temp file and rename. Safe for concurrent
// use within a single process; it does not lock across processes.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

type sessionFile struct {
	SessionID string        `yaml:"session_id"`
	Updated   time.Time     `yaml:"updated"`
	Turns     []schema.Turn `yaml:"turns"`
}

// Load returns the stored turns for a session in stored order. A session
// with no file yet is not an error: it loads as empty history.
func (s *Store) Load(sessionID string) ([]schema.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return []schema.Turn{}, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var file sessionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if file.Turns == nil {
		file.Turns = []schema.Turn{}
	}
	return file.Turns, nil
}

// Save replaces the stored history for a session.
func (s *Store) Save(sessionID string, turns []schema.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(sessionID, turns)
}

// Append adds turns to the end of a session's stored history.
func (s *Store) Append(sessionID string, turns ...schema.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := []schema.Turn{}
	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read session file: %w", err)
		}
	} else {
		var file sessionFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse session file: %w", err)
		}
		existing = file.Turns
	}

	return s.write(sessionID, append(existing, turns...))
}

// Sessions lists the session ids that have stored history.
func (s *Store) Sessions() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read history directory: %w", err)
	}

	ids := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}
	return ids, nil
}

// Delete removes a session's stored history. Deleting a session that was
// never stored is a no-op.
func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete session file: %w", err)
	}
	return nil
}

// write marshals and atomically replaces the session file. Callers hold mu.
func (s *Store) write(sessionID string, turns []schema.Turn) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := yaml.Marshal(sessionFile{
		SessionID: sessionID,
		Updated:   time.Now().UTC(),
		Turns:     turns,
	})
	if err != nil {
		return fmt.Errorf("marshal session file: %w", err)
	}

	target := s.path(sessionID)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit session file: %w", err)
	}
	return nil
}

func (s *Store) path(sessionID string) string {
	return filepath.Join(s.dir, sanitize(sessionID)+".yaml")
}

// sanitize maps a session id onto a safe file name component.
func sanitize(sessionID string) string {
	var sb strings.Builder
	for _, r := range sessionID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "default"
	}
	return sb.String()
}
