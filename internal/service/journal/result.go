package journal

import "github.com/foundermind/foundermind-backend/internal/domain"

// EntryDetail is a persisted check-in together with the burnout snapshot it
// produced.
type EntryDetail struct {
	Entry   *domain.JournalEntry
	Burnout *domain.BurnoutScore
}
