package progression

import "quiz-engine/internal/difficulty"

var ladder = []difficulty.Label{
	difficulty.LabelEasy,
	difficulty.LabelMedium,
	difficulty.LabelHard,
}

// StepDifficulty is the coarse, ordinal difficulty update used by the
// manual flow: step down on a poor outcome (floor at easy), step up on a
// good outcome answered within the level's expected time (ceiling at hard),
// otherwise hold. It is independent of the formula-based engine and the two
// must not be mixed within one flow.
func StepDifficulty(level int, current difficulty.Label, isGood bool, timeTakenMs int) difficulty.Label {
	current = difficulty.ParseLabel(string(current))
	idx := 1
	for i, l := range ladder {
		if l == current {
			idx = i
			break
		}
	}

	expected := difficulty.ExpectedTimeMs(level, current)
	switch {
	case !isGood:
		if idx > 0 {
			idx--
		}
	case timeTakenMs <= expected:
		if idx < len(ladder)-1 {
			idx++
		}
	}
	return ladder[idx]
}
