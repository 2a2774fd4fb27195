package domain

import (
	"time"

	"github.com/google/uuid"
)

// PeerMatch is one suggested peer connection between two founders. The pair
// is stored once with UserAID < UserBID (uuid byte order); each party owns an
// independent opt-in flag and dismissed flag. Rows are never hard-deleted —
// dismissal is a terminal per-party state.
type PeerMatch struct {
	ID               uuid.UUID
	UserAID          uuid.UUID
	UserBID          uuid.UUID
	Score            int
	SharedDimensions []Dimension
	AOptedIn         bool
	BOptedIn         bool
	ADismissed       bool
	BDismissed       bool
	MutualNotifiedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderMatchPair returns the two user IDs in stored order (lower uuid first)
// and the side the first argument ends up on.
func OrderMatchPair(x, y uuid.UUID) (a, b uuid.UUID, sideOfX MatchSide) {
	if compareUUID(x, y) <= 0 {
		return x, y, MatchSideA
	}
	return y, x, MatchSideB
}

func compareUUID(x, y uuid.UUID) int {
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// SideOf returns which side of the match the given user is, or false if the
// user is not a party to it.
func (m *PeerMatch) SideOf(userID uuid.UUID) (MatchSide, bool) {
	switch userID {
	case m.UserAID:
		return MatchSideA, true
	case m.UserBID:
		return MatchSideB, true
	}
	return "", false
}

// UserOn returns the user ID on the given side.
func (m *PeerMatch) UserOn(side MatchSide) uuid.UUID {
	if side == MatchSideA {
		return m.UserAID
	}
	return m.UserBID
}

// OptedIn reports the opt-in flag for one side.
func (m *PeerMatch) OptedIn(side MatchSide) bool {
	if side == MatchSideA {
		return m.AOptedIn
	}
	return m.BOptedIn
}

// Dismissed reports the dismissed flag for one side.
func (m *PeerMatch) Dismissed(side MatchSide) bool {
	if side == MatchSideA {
		return m.ADismissed
	}
	return m.BDismissed
}

// IsMutual reports whether both parties have opted in.
func (m *PeerMatch) IsMutual() bool {
	return m.AOptedIn && m.BOptedIn
}

// StatusFor derives the match state as seen by one side. The party's own
// dismissal wins over everything; mutual requires both opt-in flags.
func (m *PeerMatch) StatusFor(side MatchSide) MatchStatus {
	switch {
	case m.Dismissed(side):
		return MatchStatusDismissed
	case m.IsMutual():
		return MatchStatusMutual
	case m.OptedIn(side):
		return MatchStatusOptedIn
	}
	return MatchStatusSuggested
}

// CanOptIn reports whether the side may set its opt-in flag. Re-opting in is
// an idempotent no-op; a side that has dismissed the match may not opt in.
func (m *PeerMatch) CanOptIn(side MatchSide) bool {
	return !m.Dismissed(side)
}

// CanDismiss reports whether the side may dismiss. There is no transition out
// of mutual; re-dismissing is an idempotent no-op.
func (m *PeerMatch) CanDismiss(side MatchSide) bool {
	if m.Dismissed(side) {
		return true
	}
	return !m.IsMutual()
}

// MatchingRules holds the peer-ranking parameters (pure domain type).
type MatchingRules struct {
	SimilarityFloor        float64
	ArchetypeBonus         float64
	SharedDimensionEpsilon int
	MaxMatches             int
}
