// Package highscore persists the single best score behind a small store
// interface with file, Redis, PostgreSQL and in-memory backends.
package highscore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomz197/asteroid-avoidance/internal/config"
)

// connectTimeout bounds the initial ping of network backends.
const connectTimeout = 5 * time.Second

// Store loads and saves the high score. Load returns 0 and no error when
// nothing has been saved yet. Save keeps the larger of the stored score and
// the given one, checking and writing in one step, so sessions sharing a
// store never replace a better score. Implementations are safe for
// concurrent use.
type Store interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
	Close() error
}

// Open builds the backend selected by the settings and checks that it is
// reachable.
func Open(ctx context.Context, s config.StoreSettings) (Store, error) {
	switch s.Backend {
	case "file", "":
		return NewFileStore(s.Path), nil
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		return OpenRedis(ctx, s.Redis)
	case "postgres":
		return OpenPostgres(ctx, s.Postgres.DSN)
	}
	return nil, fmt.Errorf("unknown high score backend %q", s.Backend)
}

// MemoryStore keeps the score for the lifetime of the process.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) Save(_ context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.score {
		m.score = score
	}
	return nil
}

func (m *MemoryStore) Close() error { return nil }
