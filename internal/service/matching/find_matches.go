package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/assessment/scoring"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

const assessmentRequired = "complete the assessment before requesting matches"

// RefreshMatches ranks the founder population against the caller, persists
// every qualifying pairing and returns the caller's ranked matches. Pairings
// that already exist keep their lifecycle flags and only have their score
// refreshed; matches the caller has dismissed stay stored but are not
// returned.
func (s *Service) RefreshMatches(ctx context.Context) ([]*MatchDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	own, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewPreconditionError(assessmentRequired)
		}
		return nil, fmt.Errorf("get own profile: %w", err)
	}

	candidates, err := s.profiles.ListOthers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list candidate profiles: %w", err)
	}

	type ranked struct {
		profile *domain.Profile
		score   int
		shared  []domain.Dimension
	}
	var qualifying []ranked
	for _, cand := range candidates {
		score := s.similarityScore(own, cand)
		if score < s.rules.SimilarityFloor {
			continue
		}
		qualifying = append(qualifying, ranked{
			profile: cand,
			score:   roundScore(score),
			shared:  sharedDimensions(own.Scores, cand.Scores, s.rules.SharedDimensionEpsilon),
		})
	}

	// Descending by score; equal scores go to the candidate who completed
	// their assessment first.
	sort.SliceStable(qualifying, func(i, j int) bool {
		if qualifying[i].score != qualifying[j].score {
			return qualifying[i].score > qualifying[j].score
		}
		return qualifying[i].profile.CreatedAt.Before(qualifying[j].profile.CreatedAt)
	})
	if len(qualifying) > s.rules.MaxMatches {
		qualifying = qualifying[:s.rules.MaxMatches]
	}

	stored := make([]*domain.PeerMatch, 0, len(qualifying))
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stored = stored[:0]
		for _, q := range qualifying {
			m, err := s.upsertMatch(txCtx, userID, q.profile.UserID, q.score, q.shared)
			if err != nil {
				return err
			}
			stored = append(stored, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.PeerMatch, 0, len(stored))
	for _, m := range stored {
		side, ok := m.SideOf(userID)
		if !ok || m.Dismissed(side) {
			continue
		}
		visible = append(visible, m)
	}

	details, err := s.buildDetails(ctx, userID, visible)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "matches refreshed",
		slog.String("user_id", userID.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("qualifying", len(qualifying)),
		slog.Int("visible", len(details)),
	)

	return details, nil
}

// similarityScore is the profile-distance similarity plus the archetype
// bonus, capped at 100.
func (s *Service) similarityScore(own, cand *domain.Profile) float64 {
	score := scoring.Similarity(own.Scores.Values(), cand.Scores.Values())
	if own.Archetype == cand.Archetype {
		score += s.rules.ArchetypeBonus
	}
	if score > 100 {
		score = 100
	}
	return score
}

// upsertMatch creates the pairing on first qualification or refreshes the
// score on an existing one. Pairings where the lifecycle has moved on (either
// party dismissed, or mutual) are left untouched.
func (s *Service) upsertMatch(ctx context.Context, userID, candidateID uuid.UUID, score int, shared []domain.Dimension) (*domain.PeerMatch, error) {
	a, b, _ := domain.OrderMatchPair(userID, candidateID)

	existing, err := s.matches.GetByPair(ctx, a, b)
	switch {
	case err == nil:
		if existing.IsMutual() || existing.ADismissed || existing.BDismissed {
			return existing, nil
		}
		updated, err := s.matches.UpdateScore(ctx, existing.ID, score, shared)
		if err != nil {
			return nil, fmt.Errorf("update match score: %w", err)
		}
		return updated, nil

	case errors.Is(err, domain.ErrNotFound):
		created, err := s.matches.Create(ctx, &domain.PeerMatch{
			ID:               uuid.New(),
			UserAID:          a,
			UserBID:          b,
			Score:            score,
			SharedDimensions: shared,
		})
		if err != nil {
			// Two founders refreshing at once can both miss the pair read;
			// the unique pair index makes one insert lose.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return s.matches.GetByPair(ctx, a, b)
			}
			return nil, fmt.Errorf("create match: %w", err)
		}
		return created, nil

	default:
		return nil, fmt.Errorf("get match by pair: %w", err)
	}
}

// sharedDimensions lists the dimensions on which two profiles sit within the
// closeness epsilon of each other, in canonical order.
func sharedDimensions(a, b domain.ScoreVector, epsilon int) []domain.Dimension {
	var shared []domain.Dimension
	for _, d := range domain.AllDimensions {
		diff := a.Value(d) - b.Value(d)
		if diff < 0 {
			diff = -diff
		}
		if diff <= epsilon {
			shared = append(shared, d)
		}
	}
	return shared
}

func roundScore(v float64) int {
	return int(math.Floor(v + 0.5))
}
