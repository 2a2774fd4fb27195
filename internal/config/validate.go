package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Matching.validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}

	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("rate_limit.rps must be > 0 (got %v)", c.RateLimit.RPS)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
	}
	if c.RateLimit.CacheSize <= 0 {
		return fmt.Errorf("rate_limit.cache_size must be > 0 (got %d)", c.RateLimit.CacheSize)
	}

	if c.Insight.Enabled {
		if c.Insight.APIKey == "" {
			return fmt.Errorf("insight.api_key is required when insight.enabled is true")
		}
		if c.Insight.Model == "" {
			return fmt.Errorf("insight.model is required when insight.enabled is true")
		}
		if c.Insight.MaxTokens <= 0 {
			return fmt.Errorf("insight.max_tokens must be > 0 (got %d)", c.Insight.MaxTokens)
		}
	}

	if c.Retention.JournalDays <= 0 {
		return fmt.Errorf("retention.journal_days must be > 0 (got %d)", c.Retention.JournalDays)
	}

	return nil
}

func (m *MatchingConfig) validate() error {
	if m.SimilarityFloor < 0 || m.SimilarityFloor > 100 {
		return fmt.Errorf("similarity_floor must be in [0,100] (got %v)", m.SimilarityFloor)
	}
	if m.MaxMatches <= 0 {
		return fmt.Errorf("max_matches must be > 0 (got %d)", m.MaxMatches)
	}
	if m.ArchetypeBonus < 0 {
		return fmt.Errorf("archetype_bonus must be >= 0 (got %v)", m.ArchetypeBonus)
	}
	if m.SharedDimensionEpsilon < 0 || m.SharedDimensionEpsilon > 100 {
		return fmt.Errorf("shared_dimension_epsilon must be in [0,100] (got %d)", m.SharedDimensionEpsilon)
	}
	return nil
}
