package progression

import (
	"math"
	"testing"

	"quiz-engine/internal/difficulty"
	"quiz-engine/internal/models"
)

func TestFormulaPolicy(t *testing.T) {
	policy := FormulaPolicy{Weights: difficulty.DefaultWeights()}
	state := &models.LearnerState{CurrentDifficulty: 5.0, CurrentLevel: 1}

	decision := policy.Next(state, Outcome{
		Answer: models.AnswerEvent{
			Score:           1,
			TimeTakenMs:     12_000,
			ExpectedTimeMs:  25_000,
			ConfidenceLevel: "HIGH",
		},
	})

	if math.Abs(decision.Difficulty-5.856) > 1e-9 {
		t.Errorf("Expected difficulty 5.856, got %v", decision.Difficulty)
	}
	if decision.Label != difficulty.LabelMedium {
		t.Errorf("Expected label medium, got %s", decision.Label)
	}
	if math.Abs(decision.Delta-0.856) > 1e-9 {
		t.Errorf("Expected delta 0.856, got %v", decision.Delta)
	}
}

func TestStepperPolicy(t *testing.T) {
	policy := StepperPolicy{}
	state := &models.LearnerState{CurrentDifficulty: 5.0, CurrentLevel: 1}

	// 80% within the expected time is a good, fast outcome.
	up := policy.Next(state, Outcome{ScorePct: 80, TimeTakenMs: 20_000})
	if up.Label != difficulty.LabelHard {
		t.Errorf("Expected step up to hard, got %s", up.Label)
	}
	if up.Difficulty != 8.0 {
		t.Errorf("Expected canonical hard value 8.0, got %v", up.Difficulty)
	}

	down := policy.Next(state, Outcome{ScorePct: 40, TimeTakenMs: 20_000})
	if down.Label != difficulty.LabelEasy {
		t.Errorf("Expected step down to easy, got %s", down.Label)
	}

	if policy.Next(state, Outcome{ScorePct: DefaultGoodScorePct, TimeTakenMs: 20_000}).Label != difficulty.LabelHard {
		t.Error("Expected threshold score to count as good")
	}
}

func TestPoliciesAreNotInterchangeableNumerically(t *testing.T) {
	// Same outcome, deliberately different movement semantics.
	state := &models.LearnerState{CurrentDifficulty: 5.0, CurrentLevel: 1}
	outcome := Outcome{
		Answer: models.AnswerEvent{
			Score:           1,
			TimeTakenMs:     12_000,
			ExpectedTimeMs:  25_000,
			ConfidenceLevel: "MEDIUM",
		},
		ScorePct:    100,
		TimeTakenMs: 12_000,
	}

	var formula Policy = FormulaPolicy{Weights: difficulty.DefaultWeights()}
	var stepper Policy = StepperPolicy{}

	if formula.Next(state, outcome).Difficulty == stepper.Next(state, outcome).Difficulty {
		t.Error("Expected continuous and ordinal policies to move differently")
	}
}
