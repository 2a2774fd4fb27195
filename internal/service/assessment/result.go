package assessment

import "github.com/foundermind/foundermind-backend/internal/domain"

// ProfileDetail pairs a stored profile with the static metadata of its
// archetype so transports do not reach into the archetype catalog.
type ProfileDetail struct {
	Profile   *domain.Profile
	Archetype domain.Archetype
}

func newProfileDetail(p *domain.Profile) *ProfileDetail {
	archetype, _ := domain.ArchetypeByKey(p.Archetype)
	return &ProfileDetail{
		Profile:   p,
		Archetype: archetype,
	}
}
