package compatibility

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// precondition message required for any compatibility check with a missing
// profile on either side.
const bothProfilesRequired = "both founders must complete the assessment first"

// Compare evaluates the caller against another founder. Both parties must
// have completed the assessment; a missing profile on either side is a
// precondition failure, not a not-found.
func (s *Service) Compare(ctx context.Context, input CompareInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.OtherUserID == userID {
		return nil, domain.NewValidationError("user_id", "cannot compare a founder with themselves")
	}

	own, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewPreconditionError(bothProfilesRequired)
		}
		return nil, fmt.Errorf("get own profile: %w", err)
	}

	other, err := s.profiles.GetByUserID(ctx, input.OtherUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewPreconditionError(bothProfilesRequired)
		}
		return nil, fmt.Errorf("get other profile: %w", err)
	}

	result := compareProfiles(own.Scores, other.Scores)

	s.log.InfoContext(ctx, "compatibility compared",
		slog.String("user_id", userID.String()),
		slog.String("other_user_id", input.OtherUserID.String()),
		slog.Int("score", result.Score),
	)

	return &result, nil
}
