// Package risk derives trend summaries and burnout assessments from journal
// entries. Everything here is pure computation over domain values; callers
// load the entries and persist the results.
package risk

import (
	"time"

	"github.com/foundermind/foundermind-backend/internal/domain"
)

const (
	// MinTrendEntries is the smallest number of entries inside a window for
	// which a trend is meaningful. Below it Summarize returns nil and callers
	// must treat the trend as unknown, not as flat.
	MinTrendEntries = 3

	// slopeDeadZone is the band, in points per day, inside which a slope is
	// reported as stable.
	slopeDeadZone = 0.5
)

// TrendWindows lists the supported trailing windows, in days.
var TrendWindows = [3]int{7, 14, 30}

// MetricTrend describes one metric's behaviour inside a window.
type MetricTrend struct {
	Average   float64
	Slope     float64 // points per day, least squares
	Direction domain.TrendDirection
}

// TrendSummary aggregates the three journal metrics over one window.
type TrendSummary struct {
	WindowDays int
	Entries    int
	Mood       MetricTrend
	Energy     MetricTrend
	Stress     MetricTrend
	Overall    domain.TrendDirection
}

// ValidWindow reports whether days is one of the supported trend windows.
func ValidWindow(days int) bool {
	for _, w := range TrendWindows {
		if w == days {
			return true
		}
	}
	return false
}

// Summarize computes a trend over the trailing windowDays calendar days,
// counted back from now inclusive. Entries outside the window are ignored.
// Returns nil when fewer than MinTrendEntries remain.
func Summarize(entries []domain.JournalEntry, windowDays int, now time.Time) *TrendSummary {
	today := now.UTC().Truncate(24 * time.Hour)
	windowStart := today.AddDate(0, 0, -(windowDays - 1))

	var kept []domain.JournalEntry
	for _, e := range entries {
		day := e.EntryDate.UTC().Truncate(24 * time.Hour)
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) < MinTrendEntries {
		return nil
	}

	var first time.Time
	for i, e := range kept {
		if i == 0 || e.EntryDate.Before(first) {
			first = e.EntryDate
		}
	}

	xs := make([]float64, len(kept))
	for i, e := range kept {
		xs[i] = e.EntryDate.Sub(first).Hours() / 24
	}

	metric := func(value func(domain.JournalEntry) int, inverted bool) MetricTrend {
		ys := make([]float64, len(kept))
		var sum float64
		for i, e := range kept {
			ys[i] = float64(value(e))
			sum += ys[i]
		}
		slope := leastSquaresSlope(xs, ys)
		return MetricTrend{
			Average:   sum / float64(len(kept)),
			Slope:     slope,
			Direction: direction(slope, inverted),
		}
	}

	s := &TrendSummary{
		WindowDays: windowDays,
		Entries:    len(kept),
		Mood:       metric(func(e domain.JournalEntry) int { return e.Mood }, false),
		Energy:     metric(func(e domain.JournalEntry) int { return e.Energy }, false),
		Stress:     metric(func(e domain.JournalEntry) int { return e.Stress }, true),
	}
	s.Overall = overallDirection(s.Mood.Direction, s.Energy.Direction, s.Stress.Direction)
	return s
}

// direction maps a slope to a well-being direction. For stress the sign is
// inverted: rising stress is a worsening signal.
func direction(slope float64, inverted bool) domain.TrendDirection {
	if inverted {
		slope = -slope
	}
	switch {
	case slope > slopeDeadZone:
		return domain.TrendImproving
	case slope < -slopeDeadZone:
		return domain.TrendWorsening
	default:
		return domain.TrendStable
	}
}

// overallDirection is a majority vote across the three metrics; without a
// majority the overall trend is stable.
func overallDirection(dirs ...domain.TrendDirection) domain.TrendDirection {
	var improving, worsening int
	for _, d := range dirs {
		switch d {
		case domain.TrendImproving:
			improving++
		case domain.TrendWorsening:
			worsening++
		}
	}
	switch {
	case improving >= 2:
		return domain.TrendImproving
	case worsening >= 2:
		return domain.TrendWorsening
	default:
		return domain.TrendStable
	}
}

func leastSquaresSlope(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// All entries share a date; no slope can be inferred.
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
