package highscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

const (
	createTable = `CREATE TABLE IF NOT EXISTS high_score (
	id    INTEGER PRIMARY KEY,
	score INTEGER NOT NULL
)`
	selectScore = `SELECT score FROM high_score WHERE id = 1`
	upsertScore = `INSERT INTO high_score (id, score) VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET score = GREATEST(high_score.score, EXCLUDED.score)`
)

// PostgresStore keeps the score in a one-row table.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects with the lib/pq driver and creates the table if
// needed.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create high_score table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Load(ctx context.Context) (int, error) {
	var score int
	err := p.db.QueryRowContext(ctx, selectScore).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return score, nil
}

func (p *PostgresStore) Save(ctx context.Context, score int) error {
	if _, err := p.db.ExecContext(ctx, upsertScore, score); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
