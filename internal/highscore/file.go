package highscore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type record struct {
	HighScore int `json:"high_score"`
}

// FileStore keeps the score in a small JSON document: {"high_score": N}.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the file. A missing file is not an error.
func (f *FileStore) Load(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("decode high score %s: %w", f.path, err)
	}
	return r.HighScore, nil
}

// Save replaces the file atomically through a temporary file in the same
// directory, unless it already holds an equal or higher score. An
// unreadable file is overwritten.
func (f *FileStore) Save(_ context.Context, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if current, err := f.read(); err == nil && current >= score {
		return nil
	}

	data, err := json.Marshal(record{HighScore: score})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".high_score-*")
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
