package progression

import "github.com/montanaflynn/stats"

// The three pedagogical levels. Level gates question format: MCQs at
// Knowledge, open responses at Understanding, branching scenarios at Mastery.
const (
	LevelKnowledge     = 1
	LevelUnderstanding = 2
	LevelMastery       = 3
)

// ScoreWindowSize is the number of trailing score percentages the level
// state machine looks at.
const ScoreWindowSize = 2

// Thresholds on the window average, in percent.
const (
	promoteFromKnowledge     = 80.0
	promoteFromUnderstanding = 75.0
	demoteBelow              = 35.0
)

// AppendScore pushes a score percentage onto the rolling window, keeping
// only the most recent ScoreWindowSize entries.
func AppendScore(window []float64, pct float64) []float64 {
	window = append(window, pct)
	if len(window) > ScoreWindowSize {
		window = window[len(window)-ScoreWindowSize:]
	}
	return window
}

// NextLevel decides whether the learner moves between levels given the
// trailing window of recent score percentages (most recent last, already
// including the score just observed). An empty window leaves the level
// unchanged, and at most one transition happens per call.
func NextLevel(current int, recentScorePcts []float64) int {
	window := recentScorePcts
	if len(window) > ScoreWindowSize {
		window = window[len(window)-ScoreWindowSize:]
	}
	avg, err := stats.Mean(window)
	if err != nil {
		return current
	}

	switch current {
	case LevelKnowledge:
		if avg >= promoteFromKnowledge {
			return LevelUnderstanding
		}
	case LevelUnderstanding:
		if avg >= promoteFromUnderstanding {
			return LevelMastery
		}
		if avg < demoteBelow {
			return LevelKnowledge
		}
	case LevelMastery:
		if avg < demoteBelow {
			return LevelUnderstanding
		}
	}
	return current
}
