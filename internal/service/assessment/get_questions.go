package assessment

import "github.com/foundermind/foundermind-backend/internal/service/assessment/scoring"

// GetQuestions returns the assessment questionnaire in presentation order.
// The questionnaire is static content; no authentication context is needed.
func (s *Service) GetQuestions() []scoring.Question {
	return scoring.Questions[:]
}
