package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// Dismiss ends the match from the caller's side. Dismissal is terminal for
// that side and never touches the other party's flags; a mutual connection
// cannot be dismissed. Re-dismissing is a no-op.
func (s *Service) Dismiss(ctx context.Context, input DismissInput) (*MatchDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.matches.GetByID(ctx, input.MatchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}

	side, ok := m.SideOf(userID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	if m.Dismissed(side) {
		return s.singleDetail(ctx, userID, m)
	}

	if !m.CanDismiss(side) {
		return nil, fmt.Errorf("matching.Dismiss: mutual connections cannot be dismissed: %w", domain.ErrConflict)
	}

	updated, err := s.matches.SetDismissed(ctx, m.ID, side)
	if err != nil {
		return nil, fmt.Errorf("set dismissed: %w", err)
	}

	s.log.InfoContext(ctx, "match dismissed",
		slog.String("user_id", userID.String()),
		slog.String("match_id", m.ID.String()),
	)

	return s.singleDetail(ctx, userID, updated)
}
