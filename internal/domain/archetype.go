package domain

// Archetype carries the static descriptive metadata for one founder
// archetype. The numeric centroids used for classification live next to the
// classifier; this struct is what users actually see.
type Archetype struct {
	Key           ArchetypeKey
	Name          string
	Description   string
	Traits        []string
	Strength      string
	Challenge     string
	Encouragement string
	Urgent        bool
}

// Archetypes lists all eight archetypes in canonical order. Classification
// tie-breaks resolve to the lower index, so the order here is load-bearing.
var Archetypes = [8]Archetype{
	{
		Key:         ArchetypeVisionaryBuilder,
		Name:        "The Visionary Builder",
		Description: "You run on conviction. Big bets feel natural, setbacks read as data, and you would rather build the wrong thing fast than the safe thing slowly.",
		Traits:      []string{"bold", "optimistic", "future-oriented", "restless"},
		Strength:    "You make decisions under uncertainty that would freeze most people.",
		Challenge:   "Your appetite for risk can outrun your runway — and your team's nerves.",
	},
	{
		Key:         ArchetypeSystematicArchitect,
		Name:        "The Systematic Architect",
		Description: "You build companies the way engineers build bridges: deliberately, with margins. Process is not bureaucracy to you — it is how quality survives growth.",
		Traits:      []string{"methodical", "thorough", "quality-driven", "measured"},
		Strength:    "Nothing important falls through the cracks on your watch.",
		Challenge:   "The need to control every detail makes delegation feel like a loss.",
	},
	{
		Key:         ArchetypeResilientOperator,
		Name:        "The Resilient Operator",
		Description: "You keep an even keel. Wins don't inflate you, losses don't sink you, and you have working boundaries between yourself and the company.",
		Traits:      []string{"steady", "balanced", "pragmatic", "durable"},
		Strength:    "You can absorb bad weeks without losing the quarter.",
		Challenge:   "Your calm can read as detachment when the team needs visible fire.",
	},
	{
		Key:         ArchetypeConnectedCatalyst,
		Name:        "The Connected Catalyst",
		Description: "You think out loud and build in public. Your network is your first product surface, and you recharge from people rather than in spite of them.",
		Traits:      []string{"social", "energizing", "collaborative", "visible"},
		Strength:    "You are never more than one call away from the help you need.",
		Challenge:   "External validation can start steering decisions that should be yours.",
	},
	{
		Key:         ArchetypeReluctantCaptain,
		Name:        "The Reluctant Captain",
		Description: "You lead well and trust it little. The doubts you carry are mostly invisible to your team, which is exactly why they are heavy.",
		Traits:      []string{"conscientious", "self-critical", "careful", "loyal"},
		Strength:    "Your doubt makes you check what overconfident founders skip.",
		Challenge:   "Second-guessing delays calls that were right the first time.",
		Encouragement: "Most founders who feel like impostors are the ones doing the job " +
			"honestly. The doubt is a signal you care, not a verdict on your ability.",
	},
	{
		Key:         ArchetypeLoneWolf,
		Name:        "The Lone Wolf",
		Description: "You do your best work alone and your company knows it. Independence is your engine; the cost is that nobody sees trouble coming but you.",
		Traits:      []string{"independent", "self-reliant", "private", "focused"},
		Strength:    "You need remarkably little from others to keep shipping.",
		Challenge:   "Isolation compounds quietly — problems stay private until they are big.",
		Encouragement: "Self-reliance got you here, but one trusted peer who understands " +
			"the founder life halves the weight without slowing you down.",
	},
	{
		Key:         ArchetypeDrivenPerfectionist,
		Name:        "The Driven Perfectionist",
		Description: "The company is your craft and your mirror. You hold a bar most people can't see, and you hold yourself to it hardest of all.",
		Traits:      []string{"exacting", "intense", "devoted", "proud"},
		Strength:    "Your standards are why the product is better than it has to be.",
		Challenge:   "When the company stumbles, it feels like you stumbled — because you've fused the two.",
	},
	{
		Key:         ArchetypeBurningCandle,
		Name:        "The Burning Candle",
		Description: "You are carrying the company alone, doubting yourself while you do it, and the line between you and the business has worn away. This combination is the strongest burnout signal we track.",
		Traits:      []string{"overextended", "isolated", "self-doubting", "depleted"},
		Strength:    "You have kept going under a load that would have stopped most people already.",
		Challenge:   "Running on reserves this deep is not sustainable — something will give, and it should not be you.",
		Encouragement: "This result is not a judgment, it is an early warning. Founders who " +
			"act on it — a peer to talk to, real rest, smaller promises — recover fast. " +
			"You built something under this much weight; imagine what you build without it.",
		Urgent: true,
	},
}

// ArchetypeByKey looks up an archetype's metadata by key.
func ArchetypeByKey(key ArchetypeKey) (Archetype, bool) {
	for _, a := range Archetypes {
		if a.Key == key {
			return a, true
		}
	}
	return Archetype{}, false
}
