package compatibility

import (
	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// CompareInput holds the parameters for a compatibility check.
type CompareInput struct {
	OtherUserID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CompareInput) Validate() error {
	var errs []domain.FieldError

	if i.OtherUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
