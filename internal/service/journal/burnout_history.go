package journal

import (
	"context"
	"fmt"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

const (
	minHistoryLimit     = 1
	maxHistoryLimit     = 100
	defaultHistoryLimit = 20
)

// BurnoutHistory returns the caller's burnout snapshots, newest first. The
// history is append-only: one snapshot per journal write, never rewritten.
func (s *Service) BurnoutHistory(ctx context.Context, input BurnoutHistoryInput) ([]*domain.BurnoutScore, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	limit := clampLimit(input.Limit, minHistoryLimit, maxHistoryLimit, defaultHistoryLimit)

	scores, err := s.scores.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list burnout scores: %w", err)
	}
	if scores == nil {
		scores = []*domain.BurnoutScore{}
	}
	return scores, nil
}
