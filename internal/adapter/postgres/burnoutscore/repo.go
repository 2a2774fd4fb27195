// Package burnoutscore implements the BurnoutScore repository using PostgreSQL.
// Scores are immutable snapshots; the repository only inserts and lists.
package burnoutscore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/foundermind/foundermind-backend/internal/adapter/postgres"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// Repo provides burnout score persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new burnout score repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const scoreColumns = `
	id, user_id, entry_id, score, level, factors, created_at`

const createSQL = `
INSERT INTO burnout_scores (user_id, entry_id, score, level, factors)
VALUES ($1, $2, $3, $4, $5)
RETURNING` + scoreColumns

const listByUserSQL = `
SELECT` + scoreColumns + `
FROM burnout_scores
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

// Create inserts a new burnout snapshot and returns the persisted row.
func (r *Repo) Create(ctx context.Context, score *domain.BurnoutScore) (*domain.BurnoutScore, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	factors, err := json.Marshal(score.Factors)
	if err != nil {
		return nil, fmt.Errorf("marshal burnout factors: %w", err)
	}

	row := q.QueryRow(ctx, createSQL,
		score.UserID, score.EntryID, score.Score, string(score.Level), factors,
	)

	saved, err := scanScore(row)
	if err != nil {
		return nil, mapError(err, "burnout_score", score.UserID)
	}

	return saved, nil
}

// ListByUser returns the user's burnout snapshots, newest first, capped at limit.
// Returns an empty slice (not nil) when the user has no snapshots.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.BurnoutScore, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list burnout scores: %w", err)
	}
	defer rows.Close()

	result := []*domain.BurnoutScore{}
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan burnout_score: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list burnout scores: %w", err)
	}

	return result, nil
}

// scanScore scans one burnout score row in scoreColumns order.
func scanScore(row pgx.Row) (*domain.BurnoutScore, error) {
	var (
		s       domain.BurnoutScore
		level   string
		factors []byte
	)

	err := row.Scan(&s.ID, &s.UserID, &s.EntryID, &s.Score, &level, &factors, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.Level = domain.RiskLevel(level)
	if err := json.Unmarshal(factors, &s.Factors); err != nil {
		return nil, fmt.Errorf("unmarshal burnout factors: %w", err)
	}

	return &s, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
