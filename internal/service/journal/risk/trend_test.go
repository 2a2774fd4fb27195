package risk

import (
	"testing"
	"time"

	"github.com/foundermind/foundermind-backend/internal/domain"
)

const floatTolerance = 1e-9

var trendNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func entryOn(daysAgo, mood, energy, stress int) domain.JournalEntry {
	day := trendNow.Truncate(24 * time.Hour).AddDate(0, 0, -daysAgo)
	return domain.JournalEntry{EntryDate: day, Mood: mood, Energy: energy, Stress: stress}
}

func closeTo(a, b float64) bool {
	diff := a - b
	return diff < floatTolerance && diff > -floatTolerance
}

func TestSummarize_InsufficientData(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		entries []domain.JournalEntry
	}{
		{"empty", nil},
		{"one entry", []domain.JournalEntry{entryOn(0, 50, 50, 50)}},
		{"two entries", []domain.JournalEntry{entryOn(0, 50, 50, 50), entryOn(1, 50, 50, 50)}},
		{"three entries but only two inside the window", []domain.JournalEntry{
			entryOn(0, 50, 50, 50), entryOn(1, 50, 50, 50), entryOn(20, 50, 50, 50),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Summarize(tc.entries, 7, trendNow); got != nil {
				t.Errorf("expected nil summary, got %+v", got)
			}
		})
	}
}

func TestSummarize_LinearSlopes(t *testing.T) {
	t.Parallel()

	// Seven consecutive days: mood climbs 2 points a day, energy falls 2,
	// stress climbs 2. Perfectly linear, so the fitted slopes are exact.
	var entries []domain.JournalEntry
	for i := 0; i < 7; i++ {
		daysAgo := 6 - i
		entries = append(entries, entryOn(daysAgo, 40+2*i, 60-2*i, 50+2*i))
	}

	s := Summarize(entries, 7, trendNow)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.Entries != 7 || s.WindowDays != 7 {
		t.Errorf("entries/window = %d/%d, want 7/7", s.Entries, s.WindowDays)
	}

	if !closeTo(s.Mood.Slope, 2) || s.Mood.Direction != domain.TrendImproving {
		t.Errorf("mood = %+v, want slope 2 improving", s.Mood)
	}
	if !closeTo(s.Mood.Average, 46) {
		t.Errorf("mood average = %f, want 46", s.Mood.Average)
	}
	if !closeTo(s.Energy.Slope, -2) || s.Energy.Direction != domain.TrendWorsening {
		t.Errorf("energy = %+v, want slope -2 worsening", s.Energy)
	}
	// Rising stress is a worsening signal even though the slope is positive.
	if !closeTo(s.Stress.Slope, 2) || s.Stress.Direction != domain.TrendWorsening {
		t.Errorf("stress = %+v, want slope 2 worsening", s.Stress)
	}
	if s.Overall != domain.TrendWorsening {
		t.Errorf("overall = %s, want worsening (two of three metrics)", s.Overall)
	}
}

func TestSummarize_DeadZoneBoundary(t *testing.T) {
	t.Parallel()

	// Values 50,50,51,51,52,52,53 over seven consecutive days fit a slope of
	// exactly 0.5 points per day, which sits on the dead-zone edge and must
	// read as stable.
	values := []int{50, 50, 51, 51, 52, 52, 53}
	var entries []domain.JournalEntry
	for i, v := range values {
		entries = append(entries, entryOn(6-i, v, v, v))
	}

	s := Summarize(entries, 7, trendNow)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if !closeTo(s.Mood.Slope, 0.5) {
		t.Fatalf("mood slope = %f, want exactly 0.5", s.Mood.Slope)
	}
	for name, m := range map[string]MetricTrend{"mood": s.Mood, "energy": s.Energy, "stress": s.Stress} {
		if m.Direction != domain.TrendStable {
			t.Errorf("%s direction = %s, want stable at the dead-zone edge", name, m.Direction)
		}
	}
	if s.Overall != domain.TrendStable {
		t.Errorf("overall = %s, want stable", s.Overall)
	}
}

func TestSummarize_FallingStressImproves(t *testing.T) {
	t.Parallel()

	var entries []domain.JournalEntry
	for i := 0; i < 7; i++ {
		entries = append(entries, entryOn(6-i, 50, 50, 80-3*i))
	}

	s := Summarize(entries, 7, trendNow)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.Stress.Direction != domain.TrendImproving {
		t.Errorf("stress direction = %s, want improving (stress falling)", s.Stress.Direction)
	}
	if s.Mood.Direction != domain.TrendStable || s.Energy.Direction != domain.TrendStable {
		t.Error("flat mood/energy should be stable")
	}
	// One improving vote out of three is not a majority.
	if s.Overall != domain.TrendStable {
		t.Errorf("overall = %s, want stable", s.Overall)
	}
}

func TestSummarize_WindowFiltering(t *testing.T) {
	t.Parallel()

	entries := []domain.JournalEntry{
		entryOn(0, 60, 60, 40),
		entryOn(3, 55, 55, 45),
		entryOn(6, 50, 50, 50),
		entryOn(12, 45, 45, 55),
		entryOn(25, 40, 40, 60),
		entryOn(40, 35, 35, 65),
	}

	week := Summarize(entries, 7, trendNow)
	if week == nil || week.Entries != 3 {
		t.Fatalf("7-day window kept %+v, want 3 entries", week)
	}
	fortnight := Summarize(entries, 14, trendNow)
	if fortnight == nil || fortnight.Entries != 4 {
		t.Fatalf("14-day window kept %+v, want 4 entries", fortnight)
	}
	month := Summarize(entries, 30, trendNow)
	if month == nil || month.Entries != 5 {
		t.Fatalf("30-day window kept %+v, want 5 entries", month)
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	t.Parallel()

	ordered := []domain.JournalEntry{
		entryOn(6, 40, 70, 30),
		entryOn(4, 48, 62, 38),
		entryOn(2, 52, 58, 46),
		entryOn(0, 61, 49, 55),
	}
	shuffled := []domain.JournalEntry{ordered[2], ordered[0], ordered[3], ordered[1]}

	a := Summarize(ordered, 7, trendNow)
	b := Summarize(shuffled, 7, trendNow)
	if a == nil || b == nil {
		t.Fatal("expected summaries")
	}
	pairs := []struct {
		name string
		x, y MetricTrend
	}{
		{"mood", a.Mood, b.Mood},
		{"energy", a.Energy, b.Energy},
		{"stress", a.Stress, b.Stress},
	}
	for _, p := range pairs {
		if !closeTo(p.x.Average, p.y.Average) || !closeTo(p.x.Slope, p.y.Slope) || p.x.Direction != p.y.Direction {
			t.Errorf("%s differs by input order: %+v vs %+v", p.name, p.x, p.y)
		}
	}
	if a.Overall != b.Overall || a.Entries != b.Entries {
		t.Errorf("summaries differ by input order: %+v vs %+v", a, b)
	}
}

func TestSummarize_SingleDayDegenerate(t *testing.T) {
	t.Parallel()

	// Three entries sharing a date cannot happen through the upsert path,
	// but the fit must still not divide by zero.
	entries := []domain.JournalEntry{
		entryOn(0, 30, 30, 30),
		entryOn(0, 60, 60, 60),
		entryOn(0, 90, 90, 90),
	}

	s := Summarize(entries, 7, trendNow)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.Mood.Slope != 0 || s.Mood.Direction != domain.TrendStable {
		t.Errorf("degenerate slope = %+v, want 0/stable", s.Mood)
	}
}

func TestValidWindow(t *testing.T) {
	t.Parallel()

	for _, w := range TrendWindows {
		if !ValidWindow(w) {
			t.Errorf("ValidWindow(%d) = false", w)
		}
	}
	for _, w := range []int{0, 1, 3, 10, 31, -7} {
		if ValidWindow(w) {
			t.Errorf("ValidWindow(%d) = true", w)
		}
	}
}
