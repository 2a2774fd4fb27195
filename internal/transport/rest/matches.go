package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/matching"
)

type matchingService interface {
	RefreshMatches(ctx context.Context) ([]*matching.MatchDetail, error)
	ListMatches(ctx context.Context) ([]*matching.MatchDetail, error)
	OptIn(ctx context.Context, in matching.OptInInput) (*matching.MatchDetail, error)
	Dismiss(ctx context.Context, in matching.DismissInput) (*matching.MatchDetail, error)
}

// MatchesHandler serves peer match suggestions and the opt-in flow.
type MatchesHandler struct {
	svc matchingService
	log *slog.Logger
}

// NewMatchesHandler creates a MatchesHandler.
func NewMatchesHandler(svc matchingService, log *slog.Logger) *MatchesHandler {
	return &MatchesHandler{svc: svc, log: log}
}

// PeerResponse is the peer as shown inside a match. Pseudonym only; real
// identity is never exposed through matching.
type PeerResponse struct {
	ID        string            `json:"id"`
	Pseudonym string            `json:"pseudonym"`
	Archetype ArchetypeResponse `json:"archetype"`
}

// MatchResponse is one persisted match from the caller's point of view.
type MatchResponse struct {
	ID               string       `json:"id"`
	Score            int          `json:"score"`
	SharedDimensions []string     `json:"shared_dimensions"`
	Status           string       `json:"status"`
	Peer             PeerResponse `json:"peer"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// MatchListResponse wraps a ranked list of matches.
type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}

// Refresh recomputes suggestions for the caller and returns the ranked list.
func (h *MatchesHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.RefreshMatches(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchListResponse(details))
}

// List returns the caller's persisted matches, best score first.
func (h *MatchesHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.ListMatches(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchListResponse(details))
}

// OptIn records the caller's interest in a match.
func (h *MatchesHandler) OptIn(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(mux.Vars(r)["matchID"])
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("matchID", "must be a valid UUID"))
		return
	}

	detail, err := h.svc.OptIn(r.Context(), matching.OptInInput{MatchID: matchID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(detail))
}

// Dismiss hides a match from the caller's side.
func (h *MatchesHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(mux.Vars(r)["matchID"])
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("matchID", "must be a valid UUID"))
		return
	}

	detail, err := h.svc.Dismiss(r.Context(), matching.DismissInput{MatchID: matchID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(detail))
}

func toMatchListResponse(details []*matching.MatchDetail) MatchListResponse {
	resp := MatchListResponse{Matches: make([]MatchResponse, 0, len(details))}
	for _, d := range details {
		resp.Matches = append(resp.Matches, toMatchResponse(d))
	}
	return resp
}

func toMatchResponse(d *matching.MatchDetail) MatchResponse {
	shared := make([]string, 0, len(d.Match.SharedDimensions))
	for _, dim := range d.Match.SharedDimensions {
		shared = append(shared, dim.String())
	}

	return MatchResponse{
		ID:               d.Match.ID.String(),
		Score:            d.Match.Score,
		SharedDimensions: shared,
		Status:           d.Status.String(),
		Peer: PeerResponse{
			ID:        d.Peer.ID.String(),
			Pseudonym: d.Peer.Pseudonym,
			Archetype: toArchetypeResponse(d.PeerArchetype),
		},
		CreatedAt: d.Match.CreatedAt,
		UpdatedAt: d.Match.UpdatedAt,
	}
}
