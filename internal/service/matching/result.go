package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

// MatchDetail is one peer match as seen by the requesting founder: the stored
// match plus the peer's pseudonym and archetype for display.
type MatchDetail struct {
	Match         *domain.PeerMatch
	Status        domain.MatchStatus
	Peer          *domain.User
	PeerArchetype domain.Archetype
}

// buildDetails resolves peers for the viewer's matches in two batch lookups.
// Matches whose peer has vanished are skipped rather than failing the list.
func (s *Service) buildDetails(ctx context.Context, viewerID uuid.UUID, matches []*domain.PeerMatch) ([]*MatchDetail, error) {
	peerIDs := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		side, ok := m.SideOf(viewerID)
		if !ok {
			continue
		}
		peerIDs = append(peerIDs, m.UserOn(side.Other()))
	}

	users, err := s.users.GetByIDs(ctx, peerIDs)
	if err != nil {
		return nil, fmt.Errorf("get peer users: %w", err)
	}
	profiles, err := s.profiles.GetByUserIDs(ctx, peerIDs)
	if err != nil {
		return nil, fmt.Errorf("get peer profiles: %w", err)
	}

	details := make([]*MatchDetail, 0, len(matches))
	for _, m := range matches {
		side, ok := m.SideOf(viewerID)
		if !ok {
			continue
		}
		peerID := m.UserOn(side.Other())
		peer, okUser := users[peerID]
		peerProfile, okProfile := profiles[peerID]
		if !okUser || !okProfile {
			continue
		}

		archetype, _ := domain.ArchetypeByKey(peerProfile.Archetype)
		details = append(details, &MatchDetail{
			Match:         m,
			Status:        m.StatusFor(side),
			Peer:          peer,
			PeerArchetype: archetype,
		})
	}
	return details, nil
}
