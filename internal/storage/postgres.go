package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/interview-navigator/internal/types"
)

// Postgres stores artifacts as JSONB rows keyed by (kind, key).
type Postgres struct {
	pool *pgxpool.Pool
}

// Artifact kinds.
const (
	kindBank     = "question_bank"
	kindSnapshot = "session_snapshot"
)

// ErrNotFound is returned when no artifact exists for a key.
var ErrNotFound = fmt.Errorf("artifact not found")

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// SaveBank upserts a question bank artifact.
func (p *Postgres) SaveBank(ctx context.Context, key string, bank *types.QuestionBank) error {
	return p.saveArtifact(ctx, kindBank, key, bank)
}

// LoadBank loads a question bank artifact.
func (p *Postgres) LoadBank(ctx context.Context, key string) (*types.QuestionBank, error) {
	var bank types.QuestionBank
	if err := p.loadArtifact(ctx, kindBank, key, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// SaveSnapshot upserts a session state snapshot.
func (p *Postgres) SaveSnapshot(ctx context.Context, key string, state *types.InterviewState) error {
	return p.saveArtifact(ctx, kindSnapshot, key, state)
}

// LoadSnapshot loads a session state snapshot.
func (p *Postgres) LoadSnapshot(ctx context.Context, key string) (*types.InterviewState, error) {
	var state types.InterviewState
	if err := p.loadArtifact(ctx, kindSnapshot, key, &state); err != nil {
		return nil, err
	}
	if state.FollowUpCounts == nil {
		state.FollowUpCounts = make(map[int]int)
	}
	return &state, nil
}

func (p *Postgres) saveArtifact(ctx context.Context, kind, key string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal %s artifact: %w", kind, err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO interview_artifacts (kind, key, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (kind, key) DO UPDATE SET content = $3, updated_at = NOW()`,
		kind, key, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s %s: %w", kind, key, err)
	}
	return nil
}

func (p *Postgres) loadArtifact(ctx context.Context, kind, key string, v any) error {
	var content []byte
	err := p.pool.QueryRow(ctx,
		`SELECT content FROM interview_artifacts WHERE kind = $1 AND key = $2`,
		kind, key,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("%s %s: %w", kind, key, ErrNotFound)
		}
		return fmt.Errorf("failed to load %s %s: %w", kind, key, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to parse %s %s: %w", kind, key, err)
	}
	return nil
}
