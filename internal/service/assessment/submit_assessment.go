package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/assessment/scoring"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// SubmitAssessment scores a 25-answer set, classifies the archetype and
// stores the resulting profile. Resubmission replaces the previous profile.
func (s *Service) SubmitAssessment(ctx context.Context, input SubmitAssessmentInput) (*ProfileDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	scores, err := scoring.Compute(input.Answers)
	if err != nil {
		return nil, err
	}

	key := scoring.Classify(scores)
	archetype, _ := domain.ArchetypeByKey(key)

	// The insight may come from an external model; generate it before the
	// transaction so we never hold a connection across a network call. A
	// failing generator degrades to fallback text, never to an error.
	insight := s.insights.Generate(ctx, scores, archetype)

	var saved *domain.Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureUser(txCtx, userID); err != nil {
			return err
		}

		var upsertErr error
		saved, upsertErr = s.profiles.Upsert(txCtx, &domain.Profile{
			ID:              uuid.New(),
			UserID:          userID,
			Scores:          scores,
			Archetype:       key,
			Answers:         input.Answers,
			Insight:         insight.Text,
			InsightFallback: insight.Fallback,
		})
		if upsertErr != nil {
			return fmt.Errorf("upsert profile: %w", upsertErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "assessment submitted",
		slog.String("user_id", userID.String()),
		slog.String("archetype", string(key)),
		slog.String("motivation", string(scores.Motivation)),
		slog.Bool("insight_fallback", insight.Fallback),
	)

	return &ProfileDetail{Profile: saved, Archetype: archetype}, nil
}

// pseudonymAttempts bounds the retries when a generated pseudonym is taken.
const pseudonymAttempts = 3

// ensureUser lazily creates the founder row on first contact. Identity comes
// from the token subject, so a concurrent first submission may race us to the
// insert. The repository resolves collisions with ON CONFLICT DO NOTHING and
// reports ErrAlreadyExists, which covers both a lost insert race and a taken
// pseudonym; re-reading the row tells the two apart.
func (s *Service) ensureUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.users.GetByID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get user: %w", err)
	}

	for attempt := 0; attempt < pseudonymAttempts; attempt++ {
		_, err = s.users.Create(ctx, &domain.User{
			ID:        userID,
			Pseudonym: s.pseudonyms.Generate(),
		})
		if err == nil {
			s.log.InfoContext(ctx, "founder registered", slog.String("user_id", userID.String()))
			return nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("create user: %w", err)
		}

		_, err = s.users.GetByID(ctx, userID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get user: %w", err)
		}
		// The user row is still missing, so the pseudonym was the
		// conflict. Try another one.
	}

	return fmt.Errorf("create user %s: no free pseudonym after %d attempts", userID, pseudonymAttempts)
}
