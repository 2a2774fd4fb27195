package domain

// AnswerCode identifies which of the four options a founder picked for a
// single assessment question.
type AnswerCode string

const (
	AnswerCodeA AnswerCode = "A"
	AnswerCodeB AnswerCode = "B"
	AnswerCodeC AnswerCode = "C"
	AnswerCodeD AnswerCode = "D"
)

// AnswerCodes lists the four codes in option order.
var AnswerCodes = [4]AnswerCode{AnswerCodeA, AnswerCodeB, AnswerCodeC, AnswerCodeD}

func (c AnswerCode) String() string { return string(c) }

func (c AnswerCode) IsValid() bool {
	switch c {
	case AnswerCodeA, AnswerCodeB, AnswerCodeC, AnswerCodeD:
		return true
	}
	return false
}

// Dimension is one of the six numeric axes of a psychological profile.
type Dimension string

const (
	DimensionRiskTolerance  Dimension = "RISK_TOLERANCE"
	DimensionControlNeed    Dimension = "CONTROL_NEED"
	DimensionIsolationLevel Dimension = "ISOLATION_LEVEL"
	DimensionFounderDoubt   Dimension = "FOUNDER_DOUBT"
	DimensionIdentityFusion Dimension = "IDENTITY_FUSION"
	DimensionWorkIntensity  Dimension = "WORK_INTENSITY"
)

// AllDimensions lists the six numeric dimensions in canonical order. Every
// per-dimension loop in scoring, compatibility and matching iterates this
// slice so that outputs are ordered identically regardless of argument order.
var AllDimensions = [6]Dimension{
	DimensionRiskTolerance,
	DimensionControlNeed,
	DimensionIsolationLevel,
	DimensionFounderDoubt,
	DimensionIdentityFusion,
	DimensionWorkIntensity,
}

func (d Dimension) String() string { return string(d) }

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionRiskTolerance, DimensionControlNeed, DimensionIsolationLevel,
		DimensionFounderDoubt, DimensionIdentityFusion, DimensionWorkIntensity:
		return true
	}
	return false
}

// Label returns the human-readable name used in findings and factor lists.
func (d Dimension) Label() string {
	switch d {
	case DimensionRiskTolerance:
		return "risk tolerance"
	case DimensionControlNeed:
		return "need for control"
	case DimensionIsolationLevel:
		return "isolation"
	case DimensionFounderDoubt:
		return "self-doubt"
	case DimensionIdentityFusion:
		return "identity fusion"
	case DimensionWorkIntensity:
		return "work intensity"
	}
	return string(d)
}

// Motivation is the categorical seventh dimension of a profile.
type Motivation string

const (
	MotivationIntrinsic Motivation = "INTRINSIC"
	MotivationExtrinsic Motivation = "EXTRINSIC"
	MotivationMixed     Motivation = "MIXED"
)

func (m Motivation) String() string { return string(m) }

func (m Motivation) IsValid() bool {
	switch m {
	case MotivationIntrinsic, MotivationExtrinsic, MotivationMixed:
		return true
	}
	return false
}

// ArchetypeKey identifies one of the eight founder archetypes.
type ArchetypeKey string

const (
	ArchetypeVisionaryBuilder    ArchetypeKey = "VISIONARY_BUILDER"
	ArchetypeSystematicArchitect ArchetypeKey = "SYSTEMATIC_ARCHITECT"
	ArchetypeResilientOperator   ArchetypeKey = "RESILIENT_OPERATOR"
	ArchetypeConnectedCatalyst   ArchetypeKey = "CONNECTED_CATALYST"
	ArchetypeReluctantCaptain    ArchetypeKey = "RELUCTANT_CAPTAIN"
	ArchetypeLoneWolf            ArchetypeKey = "LONE_WOLF"
	ArchetypeDrivenPerfectionist ArchetypeKey = "DRIVEN_PERFECTIONIST"
	ArchetypeBurningCandle       ArchetypeKey = "BURNING_CANDLE"
)

func (k ArchetypeKey) String() string { return string(k) }

func (k ArchetypeKey) IsValid() bool {
	switch k {
	case ArchetypeVisionaryBuilder, ArchetypeSystematicArchitect,
		ArchetypeResilientOperator, ArchetypeConnectedCatalyst,
		ArchetypeReluctantCaptain, ArchetypeLoneWolf,
		ArchetypeDrivenPerfectionist, ArchetypeBurningCandle:
		return true
	}
	return false
}

// RiskLevel is the categorical bucket derived from a numeric burnout score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelModerate RiskLevel = "MODERATE"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

func (l RiskLevel) String() string { return string(l) }

func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelModerate, RiskLevelHigh, RiskLevelCritical:
		return true
	}
	return false
}

// TrendDirection classifies the slope of a journaled metric over a window.
type TrendDirection string

const (
	TrendImproving TrendDirection = "IMPROVING"
	TrendWorsening TrendDirection = "WORSENING"
	TrendStable    TrendDirection = "STABLE"
)

func (d TrendDirection) String() string { return string(d) }

func (d TrendDirection) IsValid() bool {
	switch d {
	case TrendImproving, TrendWorsening, TrendStable:
		return true
	}
	return false
}

// MatchSide distinguishes the two parties of a peer match row.
type MatchSide string

const (
	MatchSideA MatchSide = "A"
	MatchSideB MatchSide = "B"
)

func (s MatchSide) String() string { return string(s) }

// Other returns the opposite side.
func (s MatchSide) Other() MatchSide {
	if s == MatchSideA {
		return MatchSideB
	}
	return MatchSideA
}

// MatchStatus is the state of a peer match as seen by one party.
type MatchStatus string

const (
	MatchStatusSuggested MatchStatus = "SUGGESTED"
	MatchStatusOptedIn   MatchStatus = "OPTED_IN"
	MatchStatusMutual    MatchStatus = "MUTUAL"
	MatchStatusDismissed MatchStatus = "DISMISSED"
)

func (s MatchStatus) String() string { return string(s) }
