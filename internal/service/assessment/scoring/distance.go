package scoring

import "math"

// DimensionWeights scale each dimension's influence on profile distance,
// indexed in canonical dimension order. The burnout-adjacent dimensions
// (isolation, self-doubt, identity fusion) separate archetypes more strongly
// than the behavioral ones, so they weigh more.
var DimensionWeights = [6]float64{
	1.0, // risk tolerance
	1.1, // need for control
	1.4, // isolation
	1.5, // self-doubt
	1.3, // identity fusion
	0.9, // work intensity
}

// WeightedSquaredDistance returns Σ wᵢ·(aᵢ−bᵢ)² over the six numeric
// dimensions.
func WeightedSquaredDistance(a, b [6]int) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += DimensionWeights[i] * d * d
	}
	return sum
}

// WeightedDistance is the square root of WeightedSquaredDistance.
func WeightedDistance(a, b [6]int) float64 {
	return math.Sqrt(WeightedSquaredDistance(a, b))
}

// maxWeightedDistance is the largest possible WeightedDistance: every
// dimension a full 100 points apart.
var maxWeightedDistance = func() float64 {
	var sum float64
	for _, w := range DimensionWeights {
		sum += w * 100 * 100
	}
	return math.Sqrt(sum)
}()

// Similarity maps the weighted distance between two profiles onto [0,100],
// where 100 means identical.
func Similarity(a, b [6]int) float64 {
	return 100 - WeightedDistance(a, b)/maxWeightedDistance*100
}
