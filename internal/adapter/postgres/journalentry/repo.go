// Package journalentry implements the JournalEntry repository using PostgreSQL.
package journalentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/foundermind/foundermind-backend/internal/adapter/postgres"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `
	id, user_id, entry_date, mood, energy, stress, notes, created_at, updated_at`

const upsertSQL = `
INSERT INTO journal_entries (user_id, entry_date, mood, energy, stress, notes)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, entry_date) DO UPDATE SET
	mood       = EXCLUDED.mood,
	energy     = EXCLUDED.energy,
	stress     = EXCLUDED.stress,
	notes      = EXCLUDED.notes,
	updated_at = now()
RETURNING` + entryColumns

const listSinceSQL = `
SELECT` + entryColumns + `
FROM journal_entries
WHERE user_id = $1 AND entry_date >= $2
ORDER BY entry_date`

// Upsert writes the entry for (UserID, EntryDate). A same-day re-submission
// overwrites the previous values in place; the original row ID and created_at
// are preserved. Returns the persisted row.
func (r *Repo) Upsert(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertSQL,
		entry.UserID, entry.EntryDate, entry.Mood, entry.Energy, entry.Stress, entry.Notes,
	)

	saved, err := scanEntry(row)
	if err != nil {
		return nil, mapError(err, "journal_entry", entry.UserID)
	}

	return saved, nil
}

// ListSince returns the user's entries with entry_date >= since, ascending.
// Returns an empty slice (not nil) when no entries fall in the window.
func (r *Repo) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSinceSQL, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	result := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal_entry: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	return result, nil
}

const deleteBeforeSQL = `
DELETE FROM journal_entries
WHERE entry_date < $1`

const countBeforeSQL = `
SELECT count(*)
FROM journal_entries
WHERE entry_date < $1`

// DeleteBefore removes all entries, for every user, with entry_date older
// than the threshold. Burnout snapshots keyed to the deleted entries go with
// them. Returns the number of deleted entries.
func (r *Repo) DeleteBefore(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBeforeSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete journal entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountBefore reports how many entries DeleteBefore would remove.
func (r *Repo) CountBefore(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, countBeforeSQL, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("count journal entries: %w", err)
	}
	return n, nil
}

// scanEntry scans one journal entry row in entryColumns order.
func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry

	err := row.Scan(
		&e.ID, &e.UserID, &e.EntryDate, &e.Mood, &e.Energy, &e.Stress,
		&e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// DATE columns come back at midnight local to the session; pin to UTC so
	// day arithmetic in the service is stable.
	e.EntryDate = e.EntryDate.UTC()

	return &e, nil
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
