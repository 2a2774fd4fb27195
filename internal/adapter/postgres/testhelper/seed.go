package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foundermind/foundermind-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row with a unique pseudonym. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Pseudonym: "steady-heron-" + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, pseudonym, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.Pseudonym, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProfile creates a profile for the user with the given score vector and
// archetype. Answers are filled with 25 "A" codes. Returns a filled domain.Profile.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, scores domain.ScoreVector, archetype domain.ArchetypeKey) domain.Profile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	answers := make([]domain.AnswerCode, domain.AnswerCount)
	for i := range answers {
		answers[i] = domain.AnswerCodeA
	}

	profile := domain.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		Scores:    scores,
		Archetype: archetype,
		Answers:   answers,
		Insight:   "Seeded insight for testing.",
		CreatedAt: now,
		UpdatedAt: now,
	}

	answerStrs := make([]string, len(answers))
	for i, a := range answers {
		answerStrs[i] = string(a)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, user_id, risk_tolerance, control_need, isolation_level,
		                       founder_doubt, identity_fusion, work_intensity, motivation,
		                       archetype, answers, insight, insight_fallback, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		profile.ID, profile.UserID,
		scores.RiskTolerance, scores.ControlNeed, scores.IsolationLevel,
		scores.FounderDoubt, scores.IdentityFusion, scores.WorkIntensity,
		string(scores.Motivation), string(archetype), answerStrs,
		profile.Insight, profile.InsightFallback, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert profile: %v", err)
	}

	return profile
}

// SeedJournalEntry creates a journal entry for the user on the given date.
// Returns a filled domain.JournalEntry.
func SeedJournalEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, entryDate time.Time, mood, energy, stress int) domain.JournalEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		EntryDate: entryDate,
		Mood:      mood,
		Energy:    energy,
		Stress:    stress,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO journal_entries (id, user_id, entry_date, mood, energy, stress, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.EntryDate, entry.Mood, entry.Energy, entry.Stress,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJournalEntry insert entry: %v", err)
	}

	return entry
}

// SeedMatch creates a peer match row between two users. The pair is stored in
// canonical order regardless of argument order. Returns the filled domain.PeerMatch.
func SeedMatch(t *testing.T, pool *pgxpool.Pool, x, y uuid.UUID, score int, shared []domain.Dimension) domain.PeerMatch {
	t.Helper()
	ctx := context.Background()

	a, b, _ := domain.OrderMatchPair(x, y)
	now := time.Now().UTC().Truncate(time.Microsecond)
	match := domain.PeerMatch{
		ID:               uuid.New(),
		UserAID:          a,
		UserBID:          b,
		Score:            score,
		SharedDimensions: shared,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	sharedStrs := make([]string, len(shared))
	for i, d := range shared {
		sharedStrs[i] = string(d)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO peer_matches (id, user_a_id, user_b_id, score, shared_dimensions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		match.ID, match.UserAID, match.UserBID, match.Score, sharedStrs,
		match.CreatedAt, match.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMatch insert match: %v", err)
	}

	return match
}

// SeedBurnoutScore creates a burnout score row keyed to a journal entry.
// Returns the filled domain.BurnoutScore.
func SeedBurnoutScore(t *testing.T, pool *pgxpool.Pool, userID, entryID uuid.UUID, score int, level domain.RiskLevel) domain.BurnoutScore {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	bs := domain.BurnoutScore{
		ID:      uuid.New(),
		UserID:  userID,
		EntryID: entryID,
		Score:   score,
		Level:   level,
		Factors: []domain.BurnoutFactor{
			{Label: "stress", Contribution: 0.5},
		},
		CreatedAt: now,
	}

	factorsJSON, err := json.Marshal(bs.Factors)
	if err != nil {
		t.Fatalf("testhelper: SeedBurnoutScore marshal factors: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO burnout_scores (id, user_id, entry_id, score, level, factors, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bs.ID, bs.UserID, bs.EntryID, bs.Score, string(bs.Level), factorsJSON, bs.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBurnoutScore insert score: %v", err)
	}

	return bs
}
