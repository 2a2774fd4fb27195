package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/journal/risk"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// GetTrend summarizes the caller's check-ins over the requested window.
// Returns (nil, nil) when the window holds fewer than risk.MinTrendEntries
// entries; callers must branch on that explicitly instead of treating a
// missing trend as flat.
func (s *Service) GetTrend(ctx context.Context, input GetTrendInput) (*risk.TrendSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	since := entryDay(now).AddDate(0, 0, -(input.WindowDays - 1))

	entries, err := s.entries.ListSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list entries for trend: %w", err)
	}

	return risk.Summarize(entries, input.WindowDays, now), nil
}
