package compatibility

import "github.com/foundermind/foundermind-backend/internal/domain"

// Dimension thresholds for pairwise findings. A dimension reads "low" below
// lowThreshold and "high" above highThreshold; the band between produces no
// finding on its own.
const (
	lowThreshold  = 35
	highThreshold = 70
)

// Score construction: a neutral baseline, a fixed bump per complementary
// strength, a fixed cost per shared challenge, and a motivation adjustment.
const (
	baselineScore      = 50
	strengthBonus      = 8
	challengePenalty   = 6
	motivationBonus    = 10
	motivationPenalty  = 5
	maxRecommendations = 3
)

// Result describes how well two founders balance each other.
type Result struct {
	Score           int
	Strengths       []string
	Challenges      []string
	Recommendations []string
}

// compareProfiles builds a compatibility result from two score vectors. All
// per-dimension checks are symmetric in their arguments and dimensions are
// visited in canonical order, so swapping a and b yields an identical result.
func compareProfiles(a, b domain.ScoreVector) Result {
	var (
		strengths       []string
		challenges      []string
		recommendations []string
	)

	for _, d := range domain.AllDimensions {
		va, vb := a.Value(d), b.Value(d)

		complementary := (va < lowThreshold && vb > highThreshold) ||
			(vb < lowThreshold && va > highThreshold)
		if complementary {
			strengths = append(strengths, strengthSentences[d])
		}

		if va > highThreshold && vb > highThreshold {
			challenges = append(challenges, challengeSentences[d])
			recommendations = append(recommendations, challengeRecommendations[d])
		}
	}

	adjustment := motivationAdjustment(a.Motivation, b.Motivation)
	switch {
	case adjustment > 0:
		strengths = append(strengths, motivationAlignedSentence)
	case adjustment < 0:
		challenges = append(challenges, motivationClashSentence)
		recommendations = append(recommendations, motivationClashRecommendation)
	}

	score := baselineScore +
		strengthBonus*countStrengthFindings(strengths, adjustment) -
		challengePenalty*countChallengeFindings(challenges, adjustment) +
		adjustment

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return Result{
		Score:           clampScore(score),
		Strengths:       strengths,
		Challenges:      challenges,
		Recommendations: recommendations,
	}
}

// motivationAdjustment scores the categorical pairing: identical or
// intrinsic/extrinsic pairs reinforce each other, two mixed founders are
// neutral, and a mixed founder next to a firmly typed one reads as friction.
func motivationAdjustment(a, b domain.Motivation) int {
	switch {
	case a == b && a != domain.MotivationMixed:
		return motivationBonus
	case a != domain.MotivationMixed && b != domain.MotivationMixed:
		// Different and neither mixed: intrinsic with extrinsic.
		return motivationBonus
	case a == domain.MotivationMixed && b == domain.MotivationMixed:
		return 0
	default:
		return -motivationPenalty
	}
}

// The motivation sentence rides along in the findings lists but is scored by
// the adjustment, not by the per-finding increments.
func countStrengthFindings(strengths []string, adjustment int) int {
	if adjustment > 0 {
		return len(strengths) - 1
	}
	return len(strengths)
}

func countChallengeFindings(challenges []string, adjustment int) int {
	if adjustment < 0 {
		return len(challenges) - 1
	}
	return len(challenges)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
