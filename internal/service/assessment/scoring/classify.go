package scoring

import "github.com/foundermind/foundermind-backend/internal/domain"

// UrgencyThreshold is the cutoff for the urgency override: isolation,
// self-doubt and identity fusion all strictly above it classify straight to
// the urgent archetype, whatever the remaining dimensions say.
const UrgencyThreshold = 75

// tieEpsilon keeps centroid ties deterministic: a candidate must beat the
// current best by more than this to win, so equal distances resolve to the
// lower canonical index.
const tieEpsilon = 1e-9

// Centroids are the canonical reference vectors, one per archetype, in the
// same order as domain.Archetypes. Values are author-curated from the pilot
// cohort and reviewed with the psychology team; treat the shape as stable and
// the numbers as product content.
var Centroids = [8][6]int{
	{85, 55, 35, 30, 60, 80}, // VISIONARY_BUILDER
	{40, 85, 45, 35, 45, 65}, // SYSTEMATIC_ARCHITECT
	{55, 50, 30, 25, 35, 55}, // RESILIENT_OPERATOR
	{65, 40, 15, 30, 40, 60}, // CONNECTED_CATALYST
	{35, 45, 50, 75, 45, 50}, // RELUCTANT_CAPTAIN
	{60, 75, 80, 40, 55, 70}, // LONE_WOLF
	{45, 80, 55, 55, 80, 85}, // DRIVEN_PERFECTIONIST
	{50, 60, 85, 85, 85, 90}, // BURNING_CANDLE
}

// rule is one classification step: the first rule that matches wins, so the
// order of classificationRules is the tie-break policy.
type rule struct {
	name  string
	match func(domain.ScoreVector) (domain.ArchetypeKey, bool)
}

var classificationRules = []rule{
	{name: "urgency override", match: urgencyOverride},
	{name: "nearest centroid", match: nearestCentroid},
}

// Classify maps a profile to exactly one archetype. Total over any valid
// ScoreVector: the final rule always matches.
func Classify(v domain.ScoreVector) domain.ArchetypeKey {
	for _, r := range classificationRules {
		if key, ok := r.match(v); ok {
			return key
		}
	}
	// Unreachable: nearestCentroid is total.
	return domain.ArchetypeResilientOperator
}

// urgencyOverride short-circuits to the urgent archetype when all three
// burnout-indicating dimensions run hot at once.
func urgencyOverride(v domain.ScoreVector) (domain.ArchetypeKey, bool) {
	if v.IsolationLevel > UrgencyThreshold &&
		v.FounderDoubt > UrgencyThreshold &&
		v.IdentityFusion > UrgencyThreshold {
		return domain.ArchetypeBurningCandle, true
	}
	return "", false
}

// nearestCentroid picks the archetype whose centroid is closest by weighted
// squared distance; near-ties go to the lower canonical index.
func nearestCentroid(v domain.ScoreVector) (domain.ArchetypeKey, bool) {
	values := v.Values()
	best := 0
	bestDist := WeightedSquaredDistance(values, Centroids[0])
	for i := 1; i < len(Centroids); i++ {
		if d := WeightedSquaredDistance(values, Centroids[i]); d < bestDist-tieEpsilon {
			best, bestDist = i, d
		}
	}
	return domain.Archetypes[best].Key, true
}
