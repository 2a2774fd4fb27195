package risk

import (
	"math"
	"sort"

	"github.com/foundermind/foundermind-backend/internal/domain"
)

// Sub-score weights. The acute component dominates because the latest entry
// reflects the founder's state today; the profile captures disposition.
const (
	profileComponentWeight = 0.40
	acuteComponentWeight   = 0.60
	trendAdjustment        = 10.0
)

// Profile dimensions relevant to burnout, with their shares of the profile
// sub-score.
const (
	isolationShare = 0.30
	doubtShare     = 0.30
	fusionShare    = 0.25
	intensityShare = 0.15
)

// Shares of the acute sub-score. Mood and energy are inverted: low values
// drive risk up.
const (
	moodShare   = 0.35
	energyShare = 0.35
	stressShare = 0.30
)

// maxFactors caps the ranked factor list on an Evaluation.
const maxFactors = 3

// Risk level thresholds on the final [0,100] score.
const (
	moderateFloor = 40
	highFloor     = 60
	criticalFloor = 80
)

// Evaluation is the outcome of scoring one journal entry.
type Evaluation struct {
	Score   int
	Level   domain.RiskLevel
	Factors []domain.BurnoutFactor
}

// Evaluate fuses the latest journal entry with the founder's profile and the
// current trend into a burnout evaluation. Both profile and trend may be nil:
// without a profile the acute component carries full weight, and without a
// trend no adjustment is applied.
func Evaluate(entry domain.JournalEntry, profile *domain.ScoreVector, trend *TrendSummary) Evaluation {
	type candidate struct {
		label        string
		contribution float64
	}
	var candidates []candidate

	acuteShare := func(share float64) float64 {
		if profile == nil {
			return share
		}
		return share * acuteComponentWeight
	}

	mood := clampMetric(entry.Mood)
	energy := clampMetric(entry.Energy)
	stress := clampMetric(entry.Stress)

	total := acuteShare(moodShare)*float64(100-mood) +
		acuteShare(energyShare)*float64(100-energy) +
		acuteShare(stressShare)*float64(stress)

	candidates = append(candidates,
		candidate{"low mood", acuteShare(moodShare) * float64(100-mood)},
		candidate{"low energy", acuteShare(energyShare) * float64(100-energy)},
		candidate{"high stress", acuteShare(stressShare) * float64(stress)},
	)

	if profile != nil {
		iso := float64(clampMetric(profile.IsolationLevel))
		doubt := float64(clampMetric(profile.FounderDoubt))
		fusion := float64(clampMetric(profile.IdentityFusion))
		intensity := float64(clampMetric(profile.WorkIntensity))

		total += profileComponentWeight * (isolationShare*iso +
			doubtShare*doubt + fusionShare*fusion + intensityShare*intensity)

		candidates = append(candidates,
			candidate{"high isolation", profileComponentWeight * isolationShare * iso},
			candidate{"self-doubt under pressure", profileComponentWeight * doubtShare * doubt},
			candidate{"identity fused with the company", profileComponentWeight * fusionShare * fusion},
			candidate{"sustained work intensity", profileComponentWeight * intensityShare * intensity},
		)
	}

	if trend != nil {
		switch trend.Overall {
		case domain.TrendWorsening:
			total += trendAdjustment
			candidates = append(candidates, candidate{"worsening weekly trend", trendAdjustment})
		case domain.TrendImproving:
			total -= trendAdjustment
			candidates = append(candidates, candidate{"improving weekly trend", -trendAdjustment})
		}
	}

	score := int(math.Floor(clampTotal(total) + 0.5))

	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(candidates[i].contribution) > math.Abs(candidates[j].contribution)
	})

	factors := make([]domain.BurnoutFactor, 0, maxFactors)
	for _, c := range candidates {
		if len(factors) == maxFactors {
			break
		}
		if c.contribution == 0 {
			continue
		}
		factors = append(factors, domain.BurnoutFactor{
			Label:        c.label,
			Contribution: math.Round(c.contribution*10) / 10,
		})
	}

	return Evaluation{
		Score:   score,
		Level:   LevelFor(score),
		Factors: factors,
	}
}

// LevelFor buckets a [0,100] burnout score into a risk level.
func LevelFor(score int) domain.RiskLevel {
	switch {
	case score >= criticalFloor:
		return domain.RiskLevelCritical
	case score >= highFloor:
		return domain.RiskLevelHigh
	case score >= moderateFloor:
		return domain.RiskLevelModerate
	default:
		return domain.RiskLevelLow
	}
}

func clampMetric(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampTotal(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
