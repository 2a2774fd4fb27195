// Package scoring turns a completed founder assessment into a ScoreVector and
// classifies that vector into an archetype. All tables here are static product
// content: same answers in, same profile out, no external state.
package scoring

import "github.com/foundermind/foundermind-backend/internal/domain"

// Lean tags an option as revealing intrinsic or extrinsic motivation.
type Lean int

const (
	LeanNone Lean = iota
	LeanIntrinsic
	LeanExtrinsic
)

// DimensionWeight is one option's contribution to one numeric dimension.
type DimensionWeight struct {
	Dim    domain.Dimension
	Points int
}

// Option is one of the four choices for a question.
type Option struct {
	Text       string
	Weights    []DimensionWeight
	Lean       Lean
	LeanPoints int
}

// Question is a single assessment item. Options are indexed A..D.
type Question struct {
	ID      int
	Prompt  string
	Options [4]Option
}

// Short aliases keep the table readable.
const (
	risk      = domain.DimensionRiskTolerance
	control   = domain.DimensionControlNeed
	isolation = domain.DimensionIsolationLevel
	doubt     = domain.DimensionFounderDoubt
	fusion    = domain.DimensionIdentityFusion
	intensity = domain.DimensionWorkIntensity
)

// Questions is the fixed 25-item assessment. Four questions per dimension for
// the first five dimensions, three for work intensity, and two
// motivation-focused items that also contribute lightly to risk tolerance and
// work intensity. Eight questions carry motivation leans. Option A always
// carries the highest primary weight; per-dimension normalization happens in
// Compute against the maximum attainable sums, so the table can be re-weighted
// without touching the math.
var Questions = [25]Question{
	{
		ID:     1,
		Prompt: "Your runway drops to four months. What's your instinct?",
		Options: [4]Option{
			{Text: "Double down on the bet we're already making", Weights: []DimensionWeight{{risk, 4}}, Lean: LeanIntrinsic, LeanPoints: 1},
			{Text: "Hold course and quietly open funding conversations", Weights: []DimensionWeight{{risk, 3}}},
			{Text: "Cut burn now and extend the runway", Weights: []DimensionWeight{{risk, 1}}},
			{Text: "Start lining up a soft landing", Weights: []DimensionWeight{{risk, 0}}},
		},
	},
	{
		ID:     2,
		Prompt: "A huge customer wants a product direction you're not sure about.",
		Options: [4]Option{
			{Text: "Decline — the roadmap is the roadmap", Weights: []DimensionWeight{{risk, 4}}},
			{Text: "Run a time-boxed pilot before deciding", Weights: []DimensionWeight{{risk, 3}}},
			{Text: "Build it — revenue settles debates", Weights: []DimensionWeight{{risk, 1}}},
			{Text: "Build it and reshape the roadmap around them", Weights: []DimensionWeight{{risk, 0}}},
		},
	},
	{
		ID:     3,
		Prompt: "How do you feel about contracts with penalty clauses attached?",
		Options: [4]Option{
			{Text: "Fine — deadlines with teeth focus a team", Weights: []DimensionWeight{{risk, 4}}},
			{Text: "Acceptable when the upside is big enough", Weights: []DimensionWeight{{risk, 3}}},
			{Text: "I negotiate them down, hard", Weights: []DimensionWeight{{risk, 1}}},
			{Text: "I avoid committing to anything with teeth", Weights: []DimensionWeight{{risk, 0}, {control, 2}}},
		},
	},
	{
		ID:     4,
		Prompt: "Friends would describe your career so far as…",
		Options: [4]Option{
			{Text: "A series of leaps", Weights: []DimensionWeight{{risk, 4}}, Lean: LeanIntrinsic, LeanPoints: 1},
			{Text: "Calculated jumps with a parachute packed", Weights: []DimensionWeight{{risk, 3}}},
			{Text: "A steady climb with one detour", Weights: []DimensionWeight{{risk, 1}}},
			{Text: "A ladder, one rung at a time", Weights: []DimensionWeight{{risk, 0}}},
		},
	},
	{
		ID:     5,
		Prompt: "A senior hire wants to redesign your onboarding flow their own way.",
		Options: [4]Option{
			{Text: "They'll follow the documented process first", Weights: []DimensionWeight{{control, 4}}},
			{Text: "We walk through my reasoning, then they decide", Weights: []DimensionWeight{{control, 3}}},
			{Text: "I ask for a heads-up before anything ships", Weights: []DimensionWeight{{control, 1}}},
			{Text: "That's exactly what I hired them for", Weights: []DimensionWeight{{control, 0}}},
		},
	},
	{
		ID:     6,
		Prompt: "How detailed are your specs for work you hand off?",
		Options: [4]Option{
			{Text: "Pixel-level — ambiguity is where quality dies", Weights: []DimensionWeight{{control, 4}}},
			{Text: "Thorough on the what, lighter on the how", Weights: []DimensionWeight{{control, 3}}},
			{Text: "A paragraph and a conversation", Weights: []DimensionWeight{{control, 1}}},
			{Text: "Outcomes only — the path is theirs", Weights: []DimensionWeight{{control, 0}}},
		},
	},
	{
		ID:     7,
		Prompt: "You're on holiday and the team ships something without you.",
		Options: [4]Option{
			{Text: "That shouldn't happen — releases wait for me", Weights: []DimensionWeight{{control, 4}}},
			{Text: "I'd want a call first, even on a beach", Weights: []DimensionWeight{{control, 3}}},
			{Text: "Mild itch, but that's what process is for", Weights: []DimensionWeight{{control, 1}}},
			{Text: "Perfect — that's the point of a team", Weights: []DimensionWeight{{control, 0}}},
		},
	},
	{
		ID:     8,
		Prompt: "A \"well-run company\" mostly means…",
		Options: [4]Option{
			{Text: "One that runs exactly as designed", Weights: []DimensionWeight{{control, 4}}},
			{Text: "One where surprises are rare and small", Weights: []DimensionWeight{{control, 3}}},
			{Text: "One that recovers fast when things break", Weights: []DimensionWeight{{control, 1}}},
			{Text: "One people genuinely love working at", Weights: []DimensionWeight{{control, 0}}, Lean: LeanIntrinsic, LeanPoints: 1},
		},
	},
	{
		ID:     9,
		Prompt: "When something breaks badly, who hears about it first?",
		Options: [4]Option{
			{Text: "No one — I carry it and handle it", Weights: []DimensionWeight{{isolation, 4}, {doubt, 2}}},
			{Text: "My co-founder or a senior lead, eventually", Weights: []DimensionWeight{{isolation, 3}, {doubt, 1}}},
			{Text: "The team, in the next standup", Weights: []DimensionWeight{{isolation, 1}}},
			{Text: "Whoever can help, immediately", Weights: []DimensionWeight{{isolation, 0}}},
		},
	},
	{
		ID:     10,
		Prompt: "How many people outside the company know how it's really going?",
		Options: [4]Option{
			{Text: "Nobody — the full picture stays with me", Weights: []DimensionWeight{{isolation, 4}}},
			{Text: "One person, and they get the edited version", Weights: []DimensionWeight{{isolation, 3}}},
			{Text: "A couple of friends get the honest version", Weights: []DimensionWeight{{isolation, 1}}},
			{Text: "My circle knows the good and the ugly", Weights: []DimensionWeight{{isolation, 0}}},
		},
	},
	{
		ID:     11,
		Prompt: "Looking at last month's calendar, non-work human contact was…",
		Options: [4]Option{
			{Text: "Effectively zero", Weights: []DimensionWeight{{isolation, 4}}},
			{Text: "A handful of obligatory appearances", Weights: []DimensionWeight{{isolation, 3}}},
			{Text: "Most weeks had something real in them", Weights: []DimensionWeight{{isolation, 1}}},
			{Text: "Regular and protected — it keeps me sane", Weights: []DimensionWeight{{isolation, 0}}},
		},
	},
	{
		ID:     12,
		Prompt: "When did you last ask another founder for advice?",
		Options: [4]Option{
			{Text: "I don't — nobody else has the context", Weights: []DimensionWeight{{isolation, 4}}},
			{Text: "Months ago, maybe longer", Weights: []DimensionWeight{{isolation, 3}}},
			{Text: "Within the last few weeks", Weights: []DimensionWeight{{isolation, 1}}},
			{Text: "This week — I have people I lean on", Weights: []DimensionWeight{{isolation, 0}}},
		},
	},
	{
		ID:     13,
		Prompt: "After a pitch goes badly, the voice in your head says…",
		Options: [4]Option{
			{Text: "\"You're not cut out for this\"", Weights: []DimensionWeight{{doubt, 4}, {isolation, 2}}},
			{Text: "\"They saw through you today\"", Weights: []DimensionWeight{{doubt, 3}, {isolation, 1}}},
			{Text: "\"Rough one — fix the deck\"", Weights: []DimensionWeight{{doubt, 1}}},
			{Text: "\"Their loss, next room\"", Weights: []DimensionWeight{{doubt, 0}}},
		},
	},
	{
		ID:     14,
		Prompt: "A board member questions your strategy. First internal reaction?",
		Options: [4]Option{
			{Text: "They've finally noticed I'm improvising", Weights: []DimensionWeight{{doubt, 4}}},
			{Text: "Replay every decision from the last quarter", Weights: []DimensionWeight{{doubt, 3}}},
			{Text: "Fair challenge — let's test it against the data", Weights: []DimensionWeight{{doubt, 1}}},
			{Text: "Good — I enjoy defending this one", Weights: []DimensionWeight{{doubt, 0}}},
		},
	},
	{
		ID:     15,
		Prompt: "How often do the company's wins feel like luck?",
		Options: [4]Option{
			{Text: "Almost always — and someday it runs out", Weights: []DimensionWeight{{doubt, 4}}},
			{Text: "Often enough that praise makes me uneasy", Weights: []DimensionWeight{{doubt, 3}}},
			{Text: "Sometimes — timing matters and we've had good timing", Weights: []DimensionWeight{{doubt, 1}}},
			{Text: "Rarely — we earned those", Weights: []DimensionWeight{{doubt, 0}}},
		},
	},
	{
		ID:     16,
		Prompt: "A peer you respect praises your leadership. You think…",
		Options: [4]Option{
			{Text: "They don't see the real picture", Weights: []DimensionWeight{{doubt, 4}}},
			{Text: "Kind, but they'd revise it if they saw this week", Weights: []DimensionWeight{{doubt, 3}}},
			{Text: "Nice to hear — some of it is even true", Weights: []DimensionWeight{{doubt, 1}}},
			{Text: "Earned — I work at it deliberately", Weights: []DimensionWeight{{doubt, 0}}, Lean: LeanIntrinsic, LeanPoints: 1},
		},
	},
	{
		ID:     17,
		Prompt: "Someone trashes your product at a dinner party. It lands like…",
		Options: [4]Option{
			{Text: "They criticized me, personally", Weights: []DimensionWeight{{fusion, 4}}},
			{Text: "A sting I'll be chewing on at 2am", Weights: []DimensionWeight{{fusion, 3}}},
			{Text: "Annoying, then interesting", Weights: []DimensionWeight{{fusion, 1}}},
			{Text: "Free input about a thing I happen to make", Weights: []DimensionWeight{{fusion, 0}}},
		},
	},
	{
		ID:     18,
		Prompt: "Outside the company, what fills your time?",
		Options: [4]Option{
			{Text: "Honestly — nothing. The company is my time", Weights: []DimensionWeight{{fusion, 4}, {intensity, 2}}},
			{Text: "Leftovers of old hobbies I keep meaning to revive", Weights: []DimensionWeight{{fusion, 3}, {intensity, 1}}},
			{Text: "One or two things I actually protect", Weights: []DimensionWeight{{fusion, 1}}},
			{Text: "A full life that has nothing to do with work", Weights: []DimensionWeight{{fusion, 0}}},
		},
	},
	{
		ID:     19,
		Prompt: "If the company folded tomorrow, who would you be?",
		Options: [4]Option{
			{Text: "I genuinely don't know", Weights: []DimensionWeight{{fusion, 4}}, Lean: LeanExtrinsic, LeanPoints: 1},
			{Text: "Someone who'd need a long while to answer that", Weights: []DimensionWeight{{fusion, 3}}},
			{Text: "The same person, bruised for a season", Weights: []DimensionWeight{{fusion, 1}}},
			{Text: "The same person, minus one chapter", Weights: []DimensionWeight{{fusion, 0}}},
		},
	},
	{
		ID:     20,
		Prompt: "Your personal social media is…",
		Options: [4]Option{
			{Text: "Indistinguishable from the company's", Weights: []DimensionWeight{{fusion, 4}}, Lean: LeanExtrinsic, LeanPoints: 1},
			{Text: "Mostly company, with cameo appearances by me", Weights: []DimensionWeight{{fusion, 3}}},
			{Text: "Mixed — work wins and weekend photos", Weights: []DimensionWeight{{fusion, 1}}},
			{Text: "Company-free", Weights: []DimensionWeight{{fusion, 0}}},
		},
	},
	{
		ID:     21,
		Prompt: "A typical Saturday is…",
		Options: [4]Option{
			{Text: "A workday with worse coffee", Weights: []DimensionWeight{{intensity, 4}, {fusion, 2}}},
			{Text: "Half a workday that pretends it isn't", Weights: []DimensionWeight{{intensity, 3}, {fusion, 1}}},
			{Text: "Mostly mine, inbox glances aside", Weights: []DimensionWeight{{intensity, 1}}},
			{Text: "Off. Actually off", Weights: []DimensionWeight{{intensity, 0}}},
		},
	},
	{
		ID:     22,
		Prompt: "When did you last take three consecutive days off?",
		Options: [4]Option{
			{Text: "I can't remember — possibly never since founding", Weights: []DimensionWeight{{intensity, 4}}},
			{Text: "Over a year ago", Weights: []DimensionWeight{{intensity, 3}}},
			{Text: "Within the last six months", Weights: []DimensionWeight{{intensity, 1}}},
			{Text: "Recently, and it's scheduled again", Weights: []DimensionWeight{{intensity, 0}}},
		},
	},
	{
		ID:     23,
		Prompt: "How many evenings a week do you work past dinner?",
		Options: [4]Option{
			{Text: "All of them — evenings are a second shift", Weights: []DimensionWeight{{intensity, 4}}},
			{Text: "Five or six", Weights: []DimensionWeight{{intensity, 3}}},
			{Text: "Two or three, in crunch weeks", Weights: []DimensionWeight{{intensity, 1}}},
			{Text: "Rarely — evenings are fenced off", Weights: []DimensionWeight{{intensity, 0}}},
		},
	},
	{
		ID:     24,
		Prompt: "Why did you start this company?",
		Options: [4]Option{
			{Text: "I couldn't not build it", Weights: []DimensionWeight{{risk, 2}}, Lean: LeanIntrinsic, LeanPoints: 3},
			{Text: "I saw a market opening worth the swing", Weights: []DimensionWeight{{risk, 1}}, Lean: LeanExtrinsic, LeanPoints: 2},
			{Text: "I wanted to own my own path", Weights: []DimensionWeight{{risk, 1}}, Lean: LeanIntrinsic, LeanPoints: 2},
			{Text: "The upside beat any salary on offer", Weights: []DimensionWeight{{risk, 0}}, Lean: LeanExtrinsic, LeanPoints: 3},
		},
	},
	{
		ID:     25,
		Prompt: "What keeps you going through the worst weeks?",
		Options: [4]Option{
			{Text: "The work itself still pulls me", Weights: []DimensionWeight{{intensity, 2}}, Lean: LeanIntrinsic, LeanPoints: 3},
			{Text: "Proving the doubters wrong", Weights: []DimensionWeight{{intensity, 1}}, Lean: LeanExtrinsic, LeanPoints: 3},
			{Text: "Responsibility to the people who joined me", Weights: []DimensionWeight{{intensity, 1}}, Lean: LeanIntrinsic, LeanPoints: 1},
			{Text: "The payoff waiting at the end", Weights: []DimensionWeight{{intensity, 0}}, Lean: LeanExtrinsic, LeanPoints: 2},
		},
	},
}

// optionIndex maps an answer code to its option slot.
func optionIndex(code domain.AnswerCode) int {
	switch code {
	case domain.AnswerCodeA:
		return 0
	case domain.AnswerCodeB:
		return 1
	case domain.AnswerCodeC:
		return 2
	default:
		return 3
	}
}
