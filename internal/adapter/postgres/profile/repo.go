// Package profile implements the Profile repository using PostgreSQL.
// One profile per user; a retake overwrites in place via upsert.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/foundermind/foundermind-backend/internal/adapter/postgres"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `
	id, user_id, risk_tolerance, control_need, isolation_level,
	founder_doubt, identity_fusion, work_intensity, motivation,
	archetype, answers, insight, insight_fallback, created_at, updated_at`

const getByUserIDSQL = `
SELECT` + profileColumns + `
FROM profiles
WHERE user_id = $1`

const getByUserIDsSQL = `
SELECT` + profileColumns + `
FROM profiles
WHERE user_id = ANY($1::uuid[])`

const listOthersSQL = `
SELECT` + profileColumns + `
FROM profiles
WHERE user_id <> $1`

const upsertSQL = `
INSERT INTO profiles (
	user_id, risk_tolerance, control_need, isolation_level,
	founder_doubt, identity_fusion, work_intensity, motivation,
	archetype, answers, insight, insight_fallback
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (user_id) DO UPDATE SET
	risk_tolerance   = EXCLUDED.risk_tolerance,
	control_need     = EXCLUDED.control_need,
	isolation_level  = EXCLUDED.isolation_level,
	founder_doubt    = EXCLUDED.founder_doubt,
	identity_fusion  = EXCLUDED.identity_fusion,
	work_intensity   = EXCLUDED.work_intensity,
	motivation       = EXCLUDED.motivation,
	archetype        = EXCLUDED.archetype,
	answers          = EXCLUDED.answers,
	insight          = EXCLUDED.insight,
	insight_fallback = EXCLUDED.insight_fallback,
	updated_at       = now()
RETURNING` + profileColumns

// GetByUserID returns the profile for a user.
// Returns domain.ErrNotFound if the user has not completed an assessment.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(q.QueryRow(ctx, getByUserIDSQL, userID))
	if err != nil {
		return nil, mapError(err, "profile", userID)
	}

	return p, nil
}

// GetByUserIDs returns profiles for multiple users, keyed by user ID. Users
// without a profile are simply absent from the map.
func (r *Repo) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*domain.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]*domain.Profile{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByUserIDsSQL, userIDs)
	if err != nil {
		return nil, fmt.Errorf("get profiles by user ids: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*domain.Profile, len(userIDs))
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		result[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get profiles by user ids: %w", err)
	}

	return result, nil
}

// ListOthers returns every profile except the given user's.
// Returns an empty slice (not nil) when no other profiles exist.
func (r *Repo) ListOthers(ctx context.Context, excludeUserID uuid.UUID) ([]*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listOthersSQL, excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("list other profiles: %w", err)
	}
	defer rows.Close()

	result := []*domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list other profiles: %w", err)
	}

	return result, nil
}

// Upsert writes the profile for profile.UserID, overwriting a previous
// assessment result in place, and returns the persisted row.
func (r *Repo) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	answers := make([]string, len(profile.Answers))
	for i, a := range profile.Answers {
		answers[i] = string(a)
	}

	s := profile.Scores
	row := q.QueryRow(ctx, upsertSQL,
		profile.UserID,
		s.RiskTolerance, s.ControlNeed, s.IsolationLevel,
		s.FounderDoubt, s.IdentityFusion, s.WorkIntensity,
		string(s.Motivation), string(profile.Archetype), answers,
		profile.Insight, profile.InsightFallback,
	)

	saved, err := scanProfile(row)
	if err != nil {
		return nil, mapError(err, "profile", profile.UserID)
	}

	return saved, nil
}

// scanProfile scans one profile row in profileColumns order.
func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p          domain.Profile
		motivation string
		archetype  string
		answers    []string
	)

	err := row.Scan(
		&p.ID, &p.UserID,
		&p.Scores.RiskTolerance, &p.Scores.ControlNeed, &p.Scores.IsolationLevel,
		&p.Scores.FounderDoubt, &p.Scores.IdentityFusion, &p.Scores.WorkIntensity,
		&motivation, &archetype, &answers,
		&p.Insight, &p.InsightFallback, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Scores.Motivation = domain.Motivation(motivation)
	p.Archetype = domain.ArchetypeKey(archetype)
	p.Answers = make([]domain.AnswerCode, len(answers))
	for i, a := range answers {
		p.Answers[i] = domain.AnswerCode(a)
	}

	return &p, nil
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
