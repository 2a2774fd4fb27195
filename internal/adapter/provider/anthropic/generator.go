// Package anthropic generates AI-written profile insights via the Anthropic
// Messages API. Generation is best-effort: every failure path degrades to the
// fixed fallback text, never to an error.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/provider"
)

// cacheSize bounds the insight cache. Identical profiles are common enough
// (retakes, refreshes) that re-calling the API for them is pure waste.
const cacheSize = 512

// Generator produces profile insights from Claude, fronted by an LRU cache
// keyed on the exact score vector and archetype.
type Generator struct {
	client    sdk.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	cache     *lru.Cache[string, provider.Insight]
	log       *slog.Logger
}

// NewGenerator creates an insight generator.
func NewGenerator(log *slog.Logger, apiKey, model string, maxTokens int64, timeout time.Duration) (*Generator, error) {
	cache, err := lru.New[string, provider.Insight](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("insight cache: %w", err)
	}
	return &Generator{
		client:    sdk.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
		cache:     cache,
		log:       log.With("service", "insight"),
	}, nil
}

// Generate returns a short personalised insight for the profile. On any
// upstream problem it returns the fallback insight; callers never see an
// error from this method.
func (g *Generator) Generate(ctx context.Context, scores domain.ScoreVector, archetype domain.Archetype) provider.Insight {
	key := cacheKey(scores, archetype.Key)
	if cached, ok := g.cache.Get(key); ok {
		return cached
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	msg, err := g.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(buildPrompt(scores, archetype))),
		},
	})
	if err != nil {
		g.log.WarnContext(ctx, "insight generation failed, using fallback",
			slog.String("archetype", string(archetype.Key)),
			slog.Any("error", err),
		)
		return provider.FallbackInsight()
	}

	text := strings.TrimSpace(firstText(msg))
	if text == "" {
		g.log.WarnContext(ctx, "insight generation returned no text, using fallback",
			slog.String("archetype", string(archetype.Key)),
		)
		return provider.FallbackInsight()
	}

	insight := provider.Insight{Text: text}
	g.cache.Add(key, insight)
	return insight
}

func firstText(msg *sdk.Message) string {
	for _, block := range msg.Content {
		if block.Text != "" {
			return block.Text
		}
	}
	return ""
}

// cacheKey is the exact profile signature: six scores, motivation, archetype.
func cacheKey(s domain.ScoreVector, key domain.ArchetypeKey) string {
	v := s.Values()
	return fmt.Sprintf("%d.%d.%d.%d.%d.%d.%s.%s",
		v[0], v[1], v[2], v[3], v[4], v[5], s.Motivation, key)
}

// buildPrompt creates the single-message prompt for one profile.
func buildPrompt(scores domain.ScoreVector, archetype domain.Archetype) string {
	var b strings.Builder
	b.WriteString("You write short, warm, concrete insights for startup founders who just completed a psychological self-assessment.\n\n")
	fmt.Fprintf(&b, "The founder's archetype is %q: %s\n\n", archetype.Name, archetype.Description)
	b.WriteString("Their dimension scores (0-100):\n")
	for i, d := range domain.AllDimensions {
		fmt.Fprintf(&b, "- %s: %d\n", d.Label(), scores.Values()[i])
	}
	fmt.Fprintf(&b, "- motivation: %s\n\n", strings.ToLower(string(scores.Motivation)))
	b.WriteString("Write 2-3 sentences directly addressing the founder. " +
		"Name one concrete strength and one concrete watch-out grounded in the scores. " +
		"No headers, no lists, no clinical language, no mention of the numbers themselves.")
	return b.String()
}
