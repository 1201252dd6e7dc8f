// Package storage persists question banks and session snapshots by opaque
// key. The decision engine never touches storage; only the CLI and the HTTP
// server load and save through it.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/interview-navigator/internal/types"
)

// Store saves and loads pipeline artifacts by opaque key.
type Store interface {
	SaveBank(ctx context.Context, key string, bank *types.QuestionBank) error
	LoadBank(ctx context.Context, key string) (*types.QuestionBank, error)
	SaveSnapshot(ctx context.Context, key string, state *types.InterviewState) error
	LoadSnapshot(ctx context.Context, key string) (*types.InterviewState, error)
}

// FileStore keeps artifacts as JSON files under a base directory. It is the
// local-backup path; Postgres is the durable one.
type FileStore struct {
	baseDir string
}

// NewFileStore creates the base directory if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", baseDir, err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// SaveBank writes the bank as indented JSON under banks/.
func (s *FileStore) SaveBank(_ context.Context, key string, bank *types.QuestionBank) error {
	return s.writeJSON(filepath.Join("banks", sanitizeKey(key)+".json"), bank)
}

// LoadBank reads a bank saved under banks/.
func (s *FileStore) LoadBank(_ context.Context, key string) (*types.QuestionBank, error) {
	var bank types.QuestionBank
	if err := s.readJSON(filepath.Join("banks", sanitizeKey(key)+".json"), &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// SaveSnapshot writes a session state snapshot under sessions/.
func (s *FileStore) SaveSnapshot(_ context.Context, key string, state *types.InterviewState) error {
	return s.writeJSON(filepath.Join("sessions", sanitizeKey(key)+".json"), state)
}

// LoadSnapshot reads a session state snapshot saved under sessions/.
func (s *FileStore) LoadSnapshot(_ context.Context, key string) (*types.InterviewState, error) {
	var state types.InterviewState
	if err := s.readJSON(filepath.Join("sessions", sanitizeKey(key)+".json"), &state); err != nil {
		return nil, err
	}
	if state.FollowUpCounts == nil {
		state.FollowUpCounts = make(map[int]int)
	}
	return &state, nil
}

func (s *FileStore) writeJSON(rel string, v any) error {
	path := filepath.Join(s.baseDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) readJSON(rel string, v any) error {
	path := filepath.Join(s.baseDir, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// sanitizeKey keeps opaque keys filesystem-safe.
func sanitizeKey(key string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", ":", "_")
	return replacer.Replace(key)
}
