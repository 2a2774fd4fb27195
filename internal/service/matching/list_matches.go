package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// ListMatches returns the caller's stored matches, highest score first,
// without the ones the caller has dismissed.
func (s *Service) ListMatches(ctx context.Context) ([]*MatchDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	matches, err := s.matches.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	visible := make([]*domain.PeerMatch, 0, len(matches))
	for _, m := range matches {
		side, ok := m.SideOf(userID)
		if !ok || m.Dismissed(side) {
			continue
		}
		visible = append(visible, m)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Score != visible[j].Score {
			return visible[i].Score > visible[j].Score
		}
		return visible[i].CreatedAt.Before(visible[j].CreatedAt)
	})

	return s.buildDetails(ctx, userID, visible)
}
