package assessment

import (
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/assessment/scoring"
)

// SubmitAssessmentInput holds the parameters for submitting an answer set.
type SubmitAssessmentInput struct {
	Answers []domain.AnswerCode
}

// Validate checks all fields and collects all errors.
func (i *SubmitAssessmentInput) Validate() error {
	return scoring.ValidateAnswers(i.Answers)
}
