// Package peermatch implements the PeerMatch repository using PostgreSQL.
//
// A pair is stored once with user_a_id < user_b_id. The per-party opt-in and
// dismiss transitions are single guarded UPDATE statements so that two
// parties acting concurrently both observe a consistent row.
package peermatch

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/foundermind/foundermind-backend/internal/adapter/postgres"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// Repo provides peer match persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new peer match repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const matchColumns = `
	id, user_a_id, user_b_id, score, shared_dimensions,
	a_opted_in, b_opted_in, a_dismissed, b_dismissed,
	mutual_notified_at, created_at, updated_at`

const returningMatch = `RETURNING
	id, user_a_id, user_b_id, score, shared_dimensions,
	a_opted_in, b_opted_in, a_dismissed, b_dismissed,
	mutual_notified_at, created_at, updated_at`

const getByIDSQL = `
SELECT` + matchColumns + `
FROM peer_matches
WHERE id = $1`

const getByPairSQL = `
SELECT` + matchColumns + `
FROM peer_matches
WHERE user_a_id = $1 AND user_b_id = $2`

const listForUserSQL = `
SELECT` + matchColumns + `
FROM peer_matches
WHERE user_a_id = $1 OR user_b_id = $1
ORDER BY score DESC, created_at`

const createSQL = `
INSERT INTO peer_matches (user_a_id, user_b_id, score, shared_dimensions)
VALUES ($1, $2, $3, $4)
ON CONFLICT ON CONSTRAINT peer_matches_pair_unique DO NOTHING
` + returningMatch

const updateScoreSQL = `
UPDATE peer_matches
SET score = $2, shared_dimensions = $3, updated_at = now()
WHERE id = $1
` + returningMatch

const claimMutualNoticeSQL = `
UPDATE peer_matches
SET mutual_notified_at = now(), updated_at = now()
WHERE id = $1
  AND a_opted_in AND b_opted_in
  AND mutual_notified_at IS NULL`

// GetByID returns a match by primary key.
// Returns domain.ErrNotFound if the match does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PeerMatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMatch(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "peer_match", id)
	}

	return m, nil
}

// GetByPair returns the match for an ordered pair (userA < userB).
// Returns domain.ErrNotFound if no match exists for the pair.
func (r *Repo) GetByPair(ctx context.Context, userA, userB uuid.UUID) (*domain.PeerMatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMatch(q.QueryRow(ctx, getByPairSQL, userA, userB))
	if err != nil {
		return nil, mapError(err, "peer_match", userA)
	}

	return m, nil
}

// ListForUser returns all matches the user is a party to, best score first.
// Returns an empty slice (not nil) when the user has no matches.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.PeerMatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches for user: %w", err)
	}
	defer rows.Close()

	result := []*domain.PeerMatch{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan peer_match: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matches for user: %w", err)
	}

	return result, nil
}

// Create inserts a new match row and returns the persisted row.
// Returns domain.ErrAlreadyExists if the pair already has a match. The
// duplicate insert is skipped with ON CONFLICT DO NOTHING rather than raised,
// so losing a concurrent insert race does not abort an open transaction.
func (r *Repo) Create(ctx context.Context, match *domain.PeerMatch) (*domain.PeerMatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		match.UserAID, match.UserBID, match.Score, dimensionsToStrings(match.SharedDimensions),
	)

	saved, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("peer_match %s: %w", match.UserAID, domain.ErrAlreadyExists)
		}
		return nil, mapError(err, "peer_match", match.UserAID)
	}

	return saved, nil
}

// UpdateScore refreshes the similarity score and shared dimensions of an
// existing match, leaving the party flags untouched.
func (r *Repo) UpdateScore(ctx context.Context, id uuid.UUID, score int, shared []domain.Dimension) (*domain.PeerMatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateScoreSQL, id, score, dimensionsToStrings(shared))

	saved, err := scanMatch(row)
	if err != nil {
		return nil, mapError(err, "peer_match", id)
	}

	return saved, nil
}

// SetOptIn sets one party's opt-in flag in a single guarded UPDATE and
// returns the row as of that statement. The guard refuses the flip when that
// party has already dismissed the match; in that case the unchanged row is
// returned via re-read so the caller can inspect the state.
func (r *Repo) SetOptIn(ctx context.Context, id uuid.UUID, side domain.MatchSide) (*domain.PeerMatch, error) {
	return r.setPartyFlag(ctx, id, sideColumn(side, "a_opted_in", "b_opted_in"),
		sideColumn(side, "a_dismissed", "b_dismissed"))
}

// SetDismissed sets one party's dismissed flag in a single guarded UPDATE.
// The guard refuses the flip once the match is mutual.
func (r *Repo) SetDismissed(ctx context.Context, id uuid.UUID, side domain.MatchSide) (*domain.PeerMatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.Update("peer_matches").
		Set(sideColumn(side, "a_dismissed", "b_dismissed"), true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("NOT (a_opted_in AND b_opted_in)").
		Suffix(returningMatch).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set dismissed: %w", err)
	}

	saved, err := scanMatch(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		// Guard refused; report current state to the caller.
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return nil, mapError(err, "peer_match", id)
	}

	return saved, nil
}

// setPartyFlag flips one boolean column when the blocking column is false.
func (r *Repo) setPartyFlag(ctx context.Context, id uuid.UUID, column, blockedBy string) (*domain.PeerMatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.Update("peer_matches").
		Set(column, true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{blockedBy: false}).
		Suffix(returningMatch).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set %s: %w", column, err)
	}

	saved, err := scanMatch(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		// Guard refused; report current state to the caller.
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return nil, mapError(err, "peer_match", id)
	}

	return saved, nil
}

// ClaimMutualNotice marks the one-time mutual notification as sent and
// reports whether this caller won the claim. Exactly one of two concurrent
// callers gets true.
func (r *Repo) ClaimMutualNotice(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, claimMutualNoticeSQL, id)
	if err != nil {
		return false, mapError(err, "peer_match", id)
	}

	return tag.RowsAffected() == 1, nil
}

func sideColumn(side domain.MatchSide, a, b string) string {
	if side == domain.MatchSideA {
		return a
	}
	return b
}

func dimensionsToStrings(dims []domain.Dimension) []string {
	out := make([]string, len(dims))
	for i, d := range dims {
		out[i] = string(d)
	}
	return out
}

// scanMatch scans one peer match row in matchColumns order.
func scanMatch(row pgx.Row) (*domain.PeerMatch, error) {
	var (
		m      domain.PeerMatch
		shared []string
	)

	err := row.Scan(
		&m.ID, &m.UserAID, &m.UserBID, &m.Score, &shared,
		&m.AOptedIn, &m.BOptedIn, &m.ADismissed, &m.BDismissed,
		&m.MutualNotifiedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.SharedDimensions = make([]domain.Dimension, len(shared))
	for i, d := range shared {
		m.SharedDimensions[i] = domain.Dimension(d)
	}

	return &m, nil
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
