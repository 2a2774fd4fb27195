package assessment

import (
	"context"
	"fmt"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// GetProfile returns the caller's profile with archetype metadata attached.
// Returns domain.ErrNotFound when the founder has not completed the
// assessment yet.
func (s *Service) GetProfile(ctx context.Context) (*ProfileDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return newProfileDetail(profile), nil
}
