package compatibility

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
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements co-founder compatibility checks.
type Service struct {
	profiles profileRepo
	log      *slog.Logger
}

// NewService creates a new Compatibility service.
func NewService(log *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		profiles: profiles,
		log:      log.With("service", "compatibility"),
	}
}
