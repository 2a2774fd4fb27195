package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

const (
	minListDays     = 1
	maxListDays     = 365
	defaultListDays = 30
)

// ListEntries returns the caller's check-ins inside the trailing Days window,
// oldest first. Returns an empty slice (not nil) when there are none.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	days := clampLimit(input.Days, minListDays, maxListDays, defaultListDays)
	since := entryDay(time.Now()).AddDate(0, 0, -(days - 1))

	entries, err := s.entries.ListSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}
