package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/assessment"
	"github.com/foundermind/foundermind-backend/internal/service/assessment/scoring"
)

type assessmentService interface {
	GetQuestions() []scoring.Question
	SubmitAssessment(ctx context.Context, in assessment.SubmitAssessmentInput) (*assessment.ProfileDetail, error)
	GetProfile(ctx context.Context) (*assessment.ProfileDetail, error)
}

// AssessmentHandler serves the questionnaire and the founder profile.
type AssessmentHandler struct {
	svc assessmentService
	log *slog.Logger
}

// NewAssessmentHandler creates an AssessmentHandler.
func NewAssessmentHandler(svc assessmentService, log *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{svc: svc, log: log}
}

// QuestionResponse is one assessment item as shown to clients. Scoring
// weights stay server-side.
type QuestionResponse struct {
	ID      int              `json:"id"`
	Prompt  string           `json:"prompt"`
	Options []OptionResponse `json:"options"`
}

// OptionResponse pairs an answer code with its display text.
type OptionResponse struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// QuestionsResponse wraps the full questionnaire.
type QuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// SubmitAssessmentRequest carries the 25 answer codes in question order.
type SubmitAssessmentRequest struct {
	Answers []string `json:"answers"`
}

// ScoresResponse is the seven-part score vector.
type ScoresResponse struct {
	RiskTolerance  int    `json:"risk_tolerance"`
	ControlNeed    int    `json:"control_need"`
	IsolationLevel int    `json:"isolation_level"`
	FounderDoubt   int    `json:"founder_doubt"`
	IdentityFusion int    `json:"identity_fusion"`
	WorkIntensity  int    `json:"work_intensity"`
	Motivation     string `json:"motivation"`
}

// ArchetypeResponse is the descriptive archetype block.
type ArchetypeResponse struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Traits        []string `json:"traits"`
	Strength      string   `json:"strength"`
	Challenge     string   `json:"challenge"`
	Encouragement string   `json:"encouragement,omitempty"`
	Urgent        bool     `json:"urgent"`
}

// ProfileResponse is the full profile payload.
type ProfileResponse struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Scores          ScoresResponse    `json:"scores"`
	Archetype       ArchetypeResponse `json:"archetype"`
	Insight         string            `json:"insight"`
	InsightFallback bool              `json:"insight_fallback"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Questions returns the static 25-item questionnaire.
func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	questions := h.svc.GetQuestions()

	resp := QuestionsResponse{Questions: make([]QuestionResponse, 0, len(questions))}
	for _, q := range questions {
		qr := QuestionResponse{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: make([]OptionResponse, 0, len(q.Options)),
		}
		for i, opt := range q.Options {
			qr.Options = append(qr.Options, OptionResponse{
				Code: domain.AnswerCodes[i].String(),
				Text: opt.Text,
			})
		}
		resp.Questions = append(resp.Questions, qr)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Submit scores the 25 answers and creates or replaces the caller's profile.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitAssessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	answers := make([]domain.AnswerCode, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.AnswerCode(a))
	}

	detail, err := h.svc.SubmitAssessment(r.Context(), assessment.SubmitAssessmentInput{Answers: answers})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(detail))
}

// Profile returns the caller's profile, 404 when the assessment has not been
// taken yet.
func (h *AssessmentHandler) Profile(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(detail))
}

func toProfileResponse(d *assessment.ProfileDetail) ProfileResponse {
	return ProfileResponse{
		ID:     d.Profile.ID.String(),
		UserID: d.Profile.UserID.String(),
		Scores: ScoresResponse{
			RiskTolerance:  d.Profile.Scores.RiskTolerance,
			ControlNeed:    d.Profile.Scores.ControlNeed,
			IsolationLevel: d.Profile.Scores.IsolationLevel,
			FounderDoubt:   d.Profile.Scores.FounderDoubt,
			IdentityFusion: d.Profile.Scores.IdentityFusion,
			WorkIntensity:  d.Profile.Scores.WorkIntensity,
			Motivation:     d.Profile.Scores.Motivation.String(),
		},
		Archetype:       toArchetypeResponse(d.Archetype),
		Insight:         d.Profile.Insight,
		InsightFallback: d.Profile.InsightFallback,
		CreatedAt:       d.Profile.CreatedAt,
		UpdatedAt:       d.Profile.UpdatedAt,
	}
}

func toArchetypeResponse(a domain.Archetype) ArchetypeResponse {
	return ArchetypeResponse{
		Key:           a.Key.String(),
		Name:          a.Name,
		Description:   a.Description,
		Traits:        a.Traits,
		Strength:      a.Strength,
		Challenge:     a.Challenge,
		Encouragement: a.Encouragement,
		Urgent:        a.Urgent,
	}
}
