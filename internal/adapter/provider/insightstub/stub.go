// Package insightstub is the insight generator used when no Anthropic API
// key is configured, and in tests.
package insightstub

import (
	"context"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/provider"
)

// Stub always answers with the fixed fallback insight.
type Stub struct{}

// NewStub creates a new stub insight generator.
func NewStub() *Stub { return &Stub{} }

// Generate returns the fallback insight for any profile.
func (s *Stub) Generate(_ context.Context, _ domain.ScoreVector, _ domain.Archetype) provider.Insight {
	return provider.FallbackInsight()
}
