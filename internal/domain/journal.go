package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxNotesLength caps the free-text notes on a journal entry.
const MaxNotesLength = 2000

// JournalEntry is one founder's check-in for one calendar day. The upsert key
// is (UserID, EntryDate); re-submitting the same day overwrites in place.
type JournalEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EntryDate time.Time
	Mood      int
	Energy    int
	Stress    int
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BurnoutFactor is one ranked contributor to a burnout score.
type BurnoutFactor struct {
	Label        string  `json:"label"`
	Contribution float64 `json:"contribution"`
}

// BurnoutScore is an immutable risk snapshot produced every time a journal
// entry is written, keyed to the entry that produced it.
type BurnoutScore struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EntryID   uuid.UUID
	Score     int
	Level     RiskLevel
	Factors   []BurnoutFactor
	CreatedAt time.Time
}
