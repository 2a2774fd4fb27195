package scoring

import (
	"fmt"
	"math"

	"github.com/foundermind/foundermind-backend/internal/domain"
)

// MotivationMargin is the raw-point gap one motivation side must hold over
// the other before it wins outright; anything closer scores MIXED.
const MotivationMargin = 3

// maxPoints holds the maximum attainable raw sum per dimension: for every
// question, the best option for that dimension, summed across all questions.
// Normalization divides by these, so re-weighting the table never produces a
// score outside [0,100].
var maxPoints = maxAttainablePoints()

func maxAttainablePoints() map[domain.Dimension]int {
	out := make(map[domain.Dimension]int, len(domain.AllDimensions))
	for _, q := range Questions {
		best := make(map[domain.Dimension]int)
		for _, opt := range q.Options {
			for _, w := range opt.Weights {
				if w.Points > best[w.Dim] {
					best[w.Dim] = w.Points
				}
			}
		}
		for dim, pts := range best {
			out[dim] += pts
		}
	}
	return out
}

// ValidateAnswers checks that the answer set has exactly one valid code per
// question. Returns a *domain.ValidationError describing every bad element,
// or nil.
func ValidateAnswers(answers []domain.AnswerCode) error {
	if len(answers) != domain.AnswerCount {
		return domain.NewValidationError("answers",
			fmt.Sprintf("expected exactly %d answers, got %d", domain.AnswerCount, len(answers)))
	}
	var fields []domain.FieldError
	for i, code := range answers {
		if !code.IsValid() {
			fields = append(fields, domain.FieldError{
				Field:   fmt.Sprintf("answers[%d]", i),
				Message: fmt.Sprintf("invalid answer code %q", string(code)),
			})
		}
	}
	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// Compute maps a complete answer set to a ScoreVector. It fails only on
// invalid input; given valid answers it is total and deterministic.
func Compute(answers []domain.AnswerCode) (domain.ScoreVector, error) {
	if err := ValidateAnswers(answers); err != nil {
		return domain.ScoreVector{}, err
	}

	raw := make(map[domain.Dimension]int, len(domain.AllDimensions))
	intrinsic, extrinsic := 0, 0
	for i, q := range Questions {
		opt := q.Options[optionIndex(answers[i])]
		for _, w := range opt.Weights {
			raw[w.Dim] += w.Points
		}
		switch opt.Lean {
		case LeanIntrinsic:
			intrinsic += opt.LeanPoints
		case LeanExtrinsic:
			extrinsic += opt.LeanPoints
		}
	}

	return domain.ScoreVector{
		RiskTolerance:  normalize(raw[risk], maxPoints[risk]),
		ControlNeed:    normalize(raw[control], maxPoints[control]),
		IsolationLevel: normalize(raw[isolation], maxPoints[isolation]),
		FounderDoubt:   normalize(raw[doubt], maxPoints[doubt]),
		IdentityFusion: normalize(raw[fusion], maxPoints[fusion]),
		WorkIntensity:  normalize(raw[intensity], maxPoints[intensity]),
		Motivation:     motivationLabel(intrinsic, extrinsic),
	}, nil
}

// normalize maps a raw sum onto [0,100] with round-half-up.
func normalize(raw, maxSum int) int {
	if maxSum <= 0 {
		return 0
	}
	score := int(math.Floor(float64(raw)/float64(maxSum)*100 + 0.5))
	return clampScore(score)
}

func motivationLabel(intrinsic, extrinsic int) domain.Motivation {
	switch {
	case intrinsic-extrinsic > MotivationMargin:
		return domain.MotivationIntrinsic
	case extrinsic-intrinsic > MotivationMargin:
		return domain.MotivationExtrinsic
	}
	return domain.MotivationMixed
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
