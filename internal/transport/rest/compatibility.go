package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/compatibility"
)

type compatibilityService interface {
	Compare(ctx context.Context, in compatibility.CompareInput) (*compatibility.Result, error)
}

// CompatibilityHandler serves pairwise profile comparison.
type CompatibilityHandler struct {
	svc compatibilityService
	log *slog.Logger
}

// NewCompatibilityHandler creates a CompatibilityHandler.
func NewCompatibilityHandler(svc compatibilityService, log *slog.Logger) *CompatibilityHandler {
	return &CompatibilityHandler{svc: svc, log: log}
}

// CompatibilityResponse is the comparison payload for one pair.
type CompatibilityResponse struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
}

// Compare compares the caller's profile against the peer in the path.
func (h *CompatibilityHandler) Compare(w http.ResponseWriter, r *http.Request) {
	otherID, err := uuid.Parse(mux.Vars(r)["userID"])
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("userID", "must be a valid UUID"))
		return
	}

	result, err := h.svc.Compare(r.Context(), compatibility.CompareInput{OtherUserID: otherID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, CompatibilityResponse{
		Score:           result.Score,
		Strengths:       result.Strengths,
		Challenges:      result.Challenges,
		Recommendations: result.Recommendations,
	})
}
