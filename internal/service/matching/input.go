package matching

import (
	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// OptInInput holds the parameters for opting in to a match.
type OptInInput struct {
	MatchID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *OptInInput) Validate() error {
	var errs []domain.FieldError

	if i.MatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "match_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DismissInput holds the parameters for dismissing a match.
type DismissInput struct {
	MatchID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DismissInput) Validate() error {
	var errs []domain.FieldError

	if i.MatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "match_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
