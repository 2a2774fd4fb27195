package assessment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// insightGenerator produces the personalised profile insight. It never
// returns an error: a generator that cannot deliver real text answers with
// fallback copy instead.
type insightGenerator interface {
	Generate(ctx context.Context, scores domain.ScoreVector, archetype domain.Archetype) provider.Insight
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

// Service implements the assessment business logic: scoring answer sets,
// classifying archetypes and keeping one profile per founder.
type Service struct {
	profiles   profileRepo
	users      userRepo
	insights   insightGenerator
	pseudonyms pseudonymGenerator
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Assessment service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	users userRepo,
	insights insightGenerator,
	pseudonyms pseudonymGenerator,
	tx txManager,
) *Service {
	return &Service{
		profiles:   profiles,
		users:      users,
		insights:   insights,
		pseudonyms: pseudonyms,
		tx:         tx,
		log:        log.With("service", "assessment"),
	}
}
