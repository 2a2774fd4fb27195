package provider

// Insight is the outcome of asking a text generator for a personalised
// profile insight. Generators never fail from the caller's perspective: on
// any upstream problem they return canned text with Fallback set, and
// downstream code treats that as a normal result.
type Insight struct {
	Text     string
	Fallback bool
}

// FallbackText is the fixed copy substituted whenever insight generation is
// unavailable. Downstream logic never treats it as an error.
const FallbackText = "Your profile highlights both real strengths and real " +
	"pressure points. Founders who review their results with a trusted peer " +
	"or mentor tend to get the most out of them."

// FallbackInsight returns the canned insight used when no real text can be
// generated.
func FallbackInsight() Insight {
	return Insight{Text: FallbackText, Fallback: true}
}
