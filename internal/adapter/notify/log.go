// Package notify delivers user-facing notifications. The shipped
// implementation writes structured log records; real delivery channels run
// out-of-band off these records.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// LogNotifier records notifications to the application log.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("service", "notify")}
}

// MutualMatch records that both parties of a match opted in. The matching
// service guarantees this fires at most once per match.
func (n *LogNotifier) MutualMatch(ctx context.Context, match *domain.PeerMatch, users map[uuid.UUID]*domain.User) error {
	attrs := []any{
		slog.String("event", "mutual_match"),
		slog.String("match_id", match.ID.String()),
		slog.Int("score", match.Score),
	}
	if a, ok := users[match.UserAID]; ok {
		attrs = append(attrs, slog.String("party_a", a.Pseudonym))
	}
	if b, ok := users[match.UserBID]; ok {
		attrs = append(attrs, slog.String("party_b", b.Pseudonym))
	}
	n.log.InfoContext(ctx, "mutual match connected", attrs...)
	return nil
}
