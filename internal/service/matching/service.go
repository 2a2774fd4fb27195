package matching

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*domain.Profile, error)
	ListOthers(ctx context.Context, excludeUserID uuid.UUID) ([]*domain.Profile, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error)
}

type matchRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PeerMatch, error)
	GetByPair(ctx context.Context, userA, userB uuid.UUID) (*domain.PeerMatch, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.PeerMatch, error)
	Create(ctx context.Context, match *domain.PeerMatch) (*domain.PeerMatch, error)
	UpdateScore(ctx context.Context, id uuid.UUID, score int, shared []domain.Dimension) (*domain.PeerMatch, error)
	// SetOptIn and SetDismissed are single-statement check-and-set updates:
	// the returned row reflects both parties' flags as of the same statement.
	SetOptIn(ctx context.Context, id uuid.UUID, side domain.MatchSide) (*domain.PeerMatch, error)
	SetDismissed(ctx context.Context, id uuid.UUID, side domain.MatchSide) (*domain.PeerMatch, error)
	// ClaimMutualNotice marks the one-time mutual notification as sent and
	// reports whether this caller won the claim.
	ClaimMutualNotice(ctx context.Context, id uuid.UUID) (bool, error)
}

type notifier interface {
	MutualMatch(ctx context.Context, match *domain.PeerMatch, users map[uuid.UUID]*domain.User) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements peer matching: ranking the founder population against
// one profile and driving the two-party opt-in lifecycle.
type Service struct {
	profiles profileRepo
	users    userRepo
	matches  matchRepo
	notify   notifier
	tx       txManager
	log      *slog.Logger
	rules    domain.MatchingRules
}

// NewService creates a new Matching service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	users userRepo,
	matches matchRepo,
	notify notifier,
	tx txManager,
	rules domain.MatchingRules,
) *Service {
	return &Service{
		profiles: profiles,
		users:    users,
		matches:  matches,
		notify:   notify,
		tx:       tx,
		log:      log.With("service", "matching"),
		rules:    rules,
	}
}
