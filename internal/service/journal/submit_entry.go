package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/journal/risk"
	"github.com/foundermind/foundermind-backend/pkg/ctxutil"
)

// burnoutTrendWindow is the trailing window, in days, feeding the trend
// component of a fresh burnout score.
const burnoutTrendWindow = 7

// SubmitEntry upserts the caller's check-in for one calendar day and scores
// burnout against the row that was actually persisted. Submitting the same
// day twice overwrites the first entry; each write produces a new burnout
// snapshot.
func (s *Service) SubmitEntry(ctx context.Context, input SubmitEntryInput) (*EntryDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	day := entryDay(now)
	if !input.EntryDate.IsZero() {
		day = entryDay(input.EntryDate)
	}
	if day.After(entryDay(now)) {
		return nil, domain.NewValidationError("entry_date", "cannot be in the future")
	}

	profile := s.loadProfile(ctx, userID)

	var detail EntryDetail
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// A founder may journal before ever taking the assessment, so the
		// user row is created lazily here too.
		if err := s.ensureUser(txCtx, userID); err != nil {
			return err
		}

		saved, err := s.entries.Upsert(txCtx, &domain.JournalEntry{
			ID:        uuid.New(),
			UserID:    userID,
			EntryDate: day,
			Mood:      input.Mood,
			Energy:    input.Energy,
			Stress:    input.Stress,
			Notes:     input.Notes,
		})
		if err != nil {
			return fmt.Errorf("upsert entry: %w", err)
		}

		// The trend must include the row we just wrote, so the window is
		// read inside the same transaction.
		since := entryDay(now).AddDate(0, 0, -(burnoutTrendWindow - 1))
		window, err := s.entries.ListSince(txCtx, userID, since)
		if err != nil {
			return fmt.Errorf("list trend window: %w", err)
		}
		trend := risk.Summarize(window, burnoutTrendWindow, now)

		eval := risk.Evaluate(*saved, profile, trend)
		score, err := s.scores.Create(txCtx, &domain.BurnoutScore{
			ID:      uuid.New(),
			UserID:  userID,
			EntryID: saved.ID,
			Score:   eval.Score,
			Level:   eval.Level,
			Factors: eval.Factors,
		})
		if err != nil {
			return fmt.Errorf("create burnout score: %w", err)
		}

		detail = EntryDetail{Entry: saved, Burnout: score}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "journal entry submitted",
		slog.String("user_id", userID.String()),
		slog.String("entry_date", day.Format("2006-01-02")),
		slog.Int("burnout_score", detail.Burnout.Score),
		slog.String("risk_level", string(detail.Burnout.Level)),
	)

	return &detail, nil
}

// pseudonymAttempts bounds the retries when a generated pseudonym is taken.
const pseudonymAttempts = 3

// ensureUser lazily creates the founder row on first contact, exactly as the
// assessment submission does. The repository resolves insert collisions with
// ON CONFLICT DO NOTHING and reports ErrAlreadyExists, which covers both a
// lost insert race and a taken pseudonym; re-reading the row tells the two
// apart.
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

// loadProfile fetches the caller's score vector for the profile component of
// the burnout score. A founder without a completed assessment scores on the
// journal component alone.
func (s *Service) loadProfile(ctx context.Context, userID uuid.UUID) *domain.ScoreVector {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "load profile for burnout score",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
		return nil
	}
	return &profile.Scores
}
