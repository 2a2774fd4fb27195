package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// OptIn records the caller's agreement to connect. Opting in twice is a
// no-op; opting in to a match the caller has dismissed is a conflict. When
// the opt-in completes the pair, exactly one of the two opt-in calls claims
// the mutual notification, however the two calls interleave.
func (s *Service) OptIn(ctx context.Context, input OptInInput) (*MatchDetail, error) {
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
		// Not a party to this match; do not reveal that it exists.
		return nil, domain.ErrNotFound
	}

	if !m.CanOptIn(side) {
		return nil, fmt.Errorf("matching.OptIn: match already dismissed: %w", domain.ErrConflict)
	}

	if m.OptedIn(side) {
		return s.singleDetail(ctx, userID, m)
	}

	updated, err := s.matches.SetOptIn(ctx, m.ID, side)
	if err != nil {
		return nil, fmt.Errorf("set opt-in: %w", err)
	}

	s.log.InfoContext(ctx, "match opt-in",
		slog.String("user_id", userID.String()),
		slog.String("match_id", m.ID.String()),
		slog.Bool("mutual", updated.IsMutual()),
	)

	if updated.IsMutual() {
		s.notifyMutual(ctx, updated)
	}

	return s.singleDetail(ctx, userID, updated)
}

// notifyMutual fires the one-time mutual connection notification if this
// caller wins the claim. Notification problems are logged, never surfaced:
// the opt-in itself has already succeeded.
func (s *Service) notifyMutual(ctx context.Context, m *domain.PeerMatch) {
	claimed, err := s.matches.ClaimMutualNotice(ctx, m.ID)
	if err != nil {
		s.log.ErrorContext(ctx, "claim mutual notice",
			slog.String("match_id", m.ID.String()),
			slog.Any("error", err),
		)
		return
	}
	if !claimed {
		return
	}

	users, err := s.users.GetByIDs(ctx, []uuid.UUID{m.UserAID, m.UserBID})
	if err != nil {
		s.log.ErrorContext(ctx, "load users for mutual notice",
			slog.String("match_id", m.ID.String()),
			slog.Any("error", err),
		)
		return
	}

	if err := s.notify.MutualMatch(ctx, m, users); err != nil {
		s.log.ErrorContext(ctx, "mutual match notification",
			slog.String("match_id", m.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *Service) singleDetail(ctx context.Context, viewerID uuid.UUID, m *domain.PeerMatch) (*MatchDetail, error) {
	details, err := s.buildDetails(ctx, viewerID, []*domain.PeerMatch{m})
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("assemble match detail: %w", domain.ErrNotFound)
	}
	return details[0], nil
}
