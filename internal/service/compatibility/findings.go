package compatibility

import "github.com/foundermind/foundermind-backend/internal/domain"

// Pre-authored finding copy, keyed by dimension. Sentences are written to be
// order-neutral: they never name which founder sits on which side.

var strengthSentences = map[domain.Dimension]string{
	domain.DimensionRiskTolerance:  "One of you is comfortable making bold bets while the other instinctively guards the downside, so risk decisions get both push and pull.",
	domain.DimensionControlNeed:    "One of you wants to own the details while the other is happy to delegate, which makes splitting ownership natural instead of contested.",
	domain.DimensionIsolationLevel: "One of you processes alone and the other works through people, so between you there is both deep focus and an open channel to the outside.",
	domain.DimensionFounderDoubt:   "One of you questions everything while the other rarely looks back, a useful brake-and-accelerator pairing when decisions are hard to reverse.",
	domain.DimensionIdentityFusion: "One of you lives the company and the other keeps a life outside it, which helps you spot when the mission is swallowing the person.",
	domain.DimensionWorkIntensity:  "You run at different speeds, and that contrast is protective: the steadier one sets a floor under the sprinter's pace.",
}

var challengeSentences = map[domain.Dimension]string{
	domain.DimensionRiskTolerance:  "You are both drawn to big swings, so nobody at the table is naturally asking what happens if this fails.",
	domain.DimensionControlNeed:    "You both want the final say, and overlapping ownership is where co-founder conflicts usually start.",
	domain.DimensionIsolationLevel: "You both default to going it alone, which can leave the partnership quiet exactly when it needs conversation.",
	domain.DimensionFounderDoubt:   "You both carry heavy self-doubt, and doubt between partners compounds instead of cancelling.",
	domain.DimensionIdentityFusion: "Both of your identities are fused with the company, so a bad quarter lands as a personal verdict on two people at once.",
	domain.DimensionWorkIntensity:  "You both run hot, and two founders normalising overwork for each other is the classic road to burnout.",
}

var challengeRecommendations = map[domain.Dimension]string{
	domain.DimensionRiskTolerance:  "Agree on a written downside limit before each major bet, and let the limit say no so neither of you has to.",
	domain.DimensionControlNeed:    "Divide final decision rights by area now, while things are calm, and revisit the split quarterly.",
	domain.DimensionIsolationLevel: "Put a recurring founder check-in on the calendar that is about the two of you, not the metrics.",
	domain.DimensionFounderDoubt:   "Bring in an outside voice you both trust; two doubting founders need a third perspective, not more reassurance from each other.",
	domain.DimensionIdentityFusion: "Protect one identity each outside the company and hold each other to it like a work deadline.",
	domain.DimensionWorkIntensity:  "Set a shared hard stop one evening a week; intensity is only sustainable if somebody schedules the recovery.",
}

const (
	motivationAlignedSentence     = "Your motivations point in compatible directions, so the why behind hard pushes will rarely need relitigating."
	motivationClashSentence       = "One of you is firmly anchored in what drives them while the other is still weighing it, which can read as misaligned commitment under stress."
	motivationClashRecommendation = "Talk explicitly about what each of you is building this for; assumed motivations diverge quietly until a crisis surfaces them."
)
