package progression

import (
	"quiz-engine/internal/difficulty"
	"quiz-engine/internal/models"
)

// Outcome carries everything either difficulty policy may need for one
// graded answer. The formula policy reads the full answer event; the
// stepper policy only reads the score percentage and elapsed time.
type Outcome struct {
	Answer      models.AnswerEvent
	ScorePct    float64
	TimeTakenMs int
}

// Decision is the next difficulty position a policy settled on. Delta is
// zero for the stepper policy, which moves in whole labels.
type Decision struct {
	Difficulty float64
	Label      difficulty.Label
	Delta      float64
}

// Policy decides the next within-level difficulty after one answer. The two
// implementations have deliberately different numeric semantics and a caller
// picks one per flow; they are never merged.
type Policy interface {
	Next(state *models.LearnerState, outcome Outcome) Decision
}

// FormulaPolicy is the continuous update: delta formula, then clamp.
type FormulaPolicy struct {
	Weights difficulty.Weights
}

func (p FormulaPolicy) Next(state *models.LearnerState, outcome Outcome) Decision {
	next, delta := difficulty.NextDifficulty(state.CurrentDifficulty, outcome.Answer, p.Weights)
	return Decision{
		Difficulty: next,
		Label:      difficulty.LabelOf(next),
		Delta:      delta,
	}
}

// DefaultGoodScorePct is the score percentage at or above which the stepper
// treats an outcome as good.
const DefaultGoodScorePct = 60.0

// StepperPolicy is the ordinal update over easy/medium/hard labels.
type StepperPolicy struct {
	// GoodScorePct overrides DefaultGoodScorePct when positive.
	GoodScorePct float64
}

func (p StepperPolicy) Next(state *models.LearnerState, outcome Outcome) Decision {
	threshold := p.GoodScorePct
	if threshold <= 0 {
		threshold = DefaultGoodScorePct
	}
	label := StepDifficulty(
		state.CurrentLevel,
		difficulty.LabelOf(state.CurrentDifficulty),
		outcome.ScorePct >= threshold,
		outcome.TimeTakenMs,
	)
	return Decision{
		Difficulty: difficulty.CanonicalDifficulty(label),
		Label:      label,
	}
}
