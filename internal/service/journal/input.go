package journal

import (
	"time"
	"unicode/utf8"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/journal/risk"
)

// SubmitEntryInput holds the parameters for writing a daily check-in. A zero
// EntryDate means today.
type SubmitEntryInput struct {
	EntryDate time.Time
	Mood      int
	Energy    int
	Stress    int
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i *SubmitEntryInput) Validate() error {
	var errs []domain.FieldError

	metrics := []struct {
		field string
		value int
	}{
		{"mood", i.Mood},
		{"energy", i.Energy},
		{"stress", i.Stress},
	}
	for _, m := range metrics {
		if m.value < 0 || m.value > 100 {
			errs = append(errs, domain.FieldError{Field: m.field, Message: "must be between 0 and 100"})
		}
	}

	// The cap is in characters, matching the char_length database check.
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > domain.MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListEntriesInput holds the parameters for listing recent check-ins.
type ListEntriesInput struct {
	Days int
}

// GetTrendInput holds the parameters for a trend summary.
type GetTrendInput struct {
	WindowDays int
}

// Validate checks all fields and collects all errors.
func (i *GetTrendInput) Validate() error {
	if !risk.ValidWindow(i.WindowDays) {
		return domain.NewValidationError("window", "must be one of 7, 14, 30")
	}
	return nil
}

// BurnoutHistoryInput holds the parameters for listing burnout snapshots.
type BurnoutHistoryInput struct {
	Limit int
}
