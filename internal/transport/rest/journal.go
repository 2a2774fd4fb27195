package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/journal"
	"github.com/foundermind/foundermind-backend/internal/service/journal/risk"
)

type journalService interface {
	SubmitEntry(ctx context.Context, in journal.SubmitEntryInput) (*journal.EntryDetail, error)
	ListEntries(ctx context.Context, in journal.ListEntriesInput) ([]domain.JournalEntry, error)
	GetTrend(ctx context.Context, in journal.GetTrendInput) (*risk.TrendSummary, error)
	BurnoutHistory(ctx context.Context, in journal.BurnoutHistoryInput) ([]*domain.BurnoutScore, error)
}

// JournalHandler serves daily check-ins, trends, and burnout history.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, log *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: log}
}

// entryDateLayout is the wire format for journal dates.
const entryDateLayout = "2006-01-02"

// SubmitEntryRequest carries one daily check-in. EntryDate is optional and
// defaults to today.
type SubmitEntryRequest struct {
	EntryDate string  `json:"entry_date,omitempty"`
	Mood      int     `json:"mood"`
	Energy    int     `json:"energy"`
	Stress    int     `json:"stress"`
	Notes     *string `json:"notes,omitempty"`
}

// EntryResponse is one stored journal entry.
type EntryResponse struct {
	ID        string    `json:"id"`
	EntryDate string    `json:"entry_date"`
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy"`
	Stress    int       `json:"stress"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BurnoutResponse is one burnout snapshot.
type BurnoutResponse struct {
	ID        string                 `json:"id"`
	EntryID   string                 `json:"entry_id"`
	Score     int                    `json:"score"`
	Level     string                 `json:"level"`
	Factors   []domain.BurnoutFactor `json:"factors"`
	CreatedAt time.Time              `json:"created_at"`
}

// EntryDetailResponse pairs the written entry with the burnout snapshot it
// produced.
type EntryDetailResponse struct {
	Entry   EntryResponse    `json:"entry"`
	Burnout *BurnoutResponse `json:"burnout,omitempty"`
}

// EntryListResponse wraps entries in chronological order.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// MetricTrendResponse describes one metric inside a trend window.
type MetricTrendResponse struct {
	Average   float64 `json:"average"`
	Slope     float64 `json:"slope"`
	Direction string  `json:"direction"`
}

// TrendSummaryResponse aggregates the three metrics over one window.
type TrendSummaryResponse struct {
	WindowDays int                 `json:"window_days"`
	Entries    int                 `json:"entries"`
	Mood       MetricTrendResponse `json:"mood"`
	Energy     MetricTrendResponse `json:"energy"`
	Stress     MetricTrendResponse `json:"stress"`
	Overall    string              `json:"overall"`
}

// TrendResponse wraps the summary; Trend is null when the window holds too
// few entries for a meaningful trend.
type TrendResponse struct {
	WindowDays int                   `json:"window_days"`
	Trend      *TrendSummaryResponse `json:"trend"`
}

// BurnoutHistoryResponse wraps snapshots, newest first.
type BurnoutHistoryResponse struct {
	Scores []BurnoutResponse `json:"scores"`
}

// Submit upserts the caller's check-in for one day and returns the fresh
// burnout snapshot alongside it.
func (h *JournalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	in := journal.SubmitEntryInput{
		Mood:   req.Mood,
		Energy: req.Energy,
		Stress: req.Stress,
		Notes:  req.Notes,
	}
	if req.EntryDate != "" {
		day, err := time.Parse(entryDateLayout, req.EntryDate)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("entry_date", "must be formatted as YYYY-MM-DD"))
			return
		}
		in.EntryDate = day
	}

	detail, err := h.svc.SubmitEntry(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := EntryDetailResponse{Entry: toEntryResponse(*detail.Entry)}
	if detail.Burnout != nil {
		burnout := toBurnoutResponse(detail.Burnout)
		resp.Burnout = &burnout
	}
	writeJSON(w, http.StatusOK, resp)
}

// List returns the caller's entries inside the trailing ?days window.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), journal.ListEntriesInput{Days: days})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := EntryListResponse{Entries: make([]EntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Trend returns the trend summary for ?window days, or an explicit null when
// the window has too few entries.
func (h *JournalHandler) Trend(w http.ResponseWriter, r *http.Request) {
	window, err := queryInt(r, "window", 7)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	summary, err := h.svc.GetTrend(r.Context(), journal.GetTrendInput{WindowDays: window})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := TrendResponse{WindowDays: window}
	if summary != nil {
		resp.Trend = &TrendSummaryResponse{
			WindowDays: summary.WindowDays,
			Entries:    summary.Entries,
			Mood:       toMetricTrendResponse(summary.Mood),
			Energy:     toMetricTrendResponse(summary.Energy),
			Stress:     toMetricTrendResponse(summary.Stress),
			Overall:    summary.Overall.String(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// BurnoutHistory returns the caller's burnout snapshots, newest first.
func (h *JournalHandler) BurnoutHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	scores, err := h.svc.BurnoutHistory(r.Context(), journal.BurnoutHistoryInput{Limit: limit})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := BurnoutHistoryResponse{Scores: make([]BurnoutResponse, 0, len(scores))}
	for _, s := range scores {
		resp.Scores = append(resp.Scores, toBurnoutResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func toEntryResponse(e domain.JournalEntry) EntryResponse {
	return EntryResponse{
		ID:        e.ID.String(),
		EntryDate: e.EntryDate.Format(entryDateLayout),
		Mood:      e.Mood,
		Energy:    e.Energy,
		Stress:    e.Stress,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toBurnoutResponse(s *domain.BurnoutScore) BurnoutResponse {
	return BurnoutResponse{
		ID:        s.ID.String(),
		EntryID:   s.EntryID.String(),
		Score:     s.Score,
		Level:     s.Level.String(),
		Factors:   s.Factors,
		CreatedAt: s.CreatedAt,
	}
}

func toMetricTrendResponse(m risk.MetricTrend) MetricTrendResponse {
	return MetricTrendResponse{
		Average:   m.Average,
		Slope:     m.Slope,
		Direction: m.Direction.String(),
	}
}
