package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnswerCount is the fixed length of a completed assessment.
const AnswerCount = 25

// ScoreVector is the seven-dimension output of the assessment: six numeric
// dimensions in [0,100] plus the categorical motivation dimension.
type ScoreVector struct {
	RiskTolerance  int
	ControlNeed    int
	IsolationLevel int
	FounderDoubt   int
	IdentityFusion int
	WorkIntensity  int
	Motivation     Motivation
}

// Value returns the numeric score for one dimension.
func (v ScoreVector) Value(d Dimension) int {
	switch d {
	case DimensionRiskTolerance:
		return v.RiskTolerance
	case DimensionControlNeed:
		return v.ControlNeed
	case DimensionIsolationLevel:
		return v.IsolationLevel
	case DimensionFounderDoubt:
		return v.FounderDoubt
	case DimensionIdentityFusion:
		return v.IdentityFusion
	case DimensionWorkIntensity:
		return v.WorkIntensity
	}
	return 0
}

// Values returns the six numeric scores in canonical dimension order.
func (v ScoreVector) Values() [6]int {
	var out [6]int
	for i, d := range AllDimensions {
		out[i] = v.Value(d)
	}
	return out
}

// Profile is a founder's completed assessment result. One per user; a retake
// overwrites the previous profile in place.
type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Scores          ScoreVector
	Archetype       ArchetypeKey
	Answers         []AnswerCode
	Insight         string
	InsightFallback bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
