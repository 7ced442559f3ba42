package progression

import (
	"testing"

	"quiz-engine/internal/difficulty"
)

func TestStepDifficulty(t *testing.T) {
	testCases := []struct {
		name        string
		level       int
		current     difficulty.Label
		isGood      bool
		timeTakenMs int
		expected    difficulty.Label
	}{
		{"correct and fast steps up", 1, difficulty.LabelMedium, true, 20_000, difficulty.LabelHard},
		{"correct but slow holds", 1, difficulty.LabelMedium, true, 30_000, difficulty.LabelMedium},
		{"incorrect steps down", 1, difficulty.LabelMedium, false, 10_000, difficulty.LabelEasy},
		{"floor at easy", 1, difficulty.LabelEasy, false, 10_000, difficulty.LabelEasy},
		{"ceiling at hard", 1, difficulty.LabelHard, true, 1_000, difficulty.LabelHard},
		{"boundary time still steps up", 1, difficulty.LabelEasy, true, 15_000, difficulty.LabelMedium},
		{"level 2 uses its own expected times", 2, difficulty.LabelMedium, true, 80_000, difficulty.LabelHard},
		{"level 3 scenario budget", 3, difficulty.LabelEasy, true, 290_000, difficulty.LabelMedium},
		{"unknown label treated as medium", 1, difficulty.Label("weird"), false, 0, difficulty.LabelEasy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StepDifficulty(tc.level, tc.current, tc.isGood, tc.timeTakenMs)
			if got != tc.expected {
				t.Errorf("StepDifficulty(%d, %s, %v, %d) = %s, expected %s",
					tc.level, tc.current, tc.isGood, tc.timeTakenMs, got, tc.expected)
			}
		})
	}
}
