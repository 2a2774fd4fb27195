package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	// Upsert writes the entry for (UserID, EntryDate), overwriting a previous
	// same-day submission, and returns the persisted row.
	Upsert(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	// ListSince returns the user's entries with EntryDate >= since, ascending.
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.JournalEntry, error)
}

type burnoutRepo interface {
	Create(ctx context.Context, score *domain.BurnoutScore) (*domain.BurnoutScore, error)
	// ListByUser returns the newest snapshots first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.BurnoutScore, error)
}

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type pseudonymGenerator interface {
	Generate() string
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements daily check-ins and the burnout feedback derived from
// them.
type Service struct {
	entries    entryRepo
	scores     burnoutRepo
	profiles   profileRepo
	users      userRepo
	pseudonyms pseudonymGenerator
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Journal service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	scores burnoutRepo,
	profiles profileRepo,
	users userRepo,
	pseudonyms pseudonymGenerator,
	tx txManager,
) *Service {
	return &Service{
		entries:    entries,
		scores:     scores,
		profiles:   profiles,
		users:      users,
		pseudonyms: pseudonyms,
		tx:         tx,
		log:        log.With("service", "journal"),
	}
}

// entryDay normalizes a timestamp to its UTC calendar day.
func entryDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
