package difficulty

import "strings"

// Label is the discrete projection of the continuous difficulty scale.
type Label string

const (
	LabelEasy   Label = "easy"
	LabelMedium Label = "medium"
	LabelHard   Label = "hard"
)

// LabelOf maps a difficulty value to its display label.
func LabelOf(d float64) Label {
	switch {
	case d < 4.0:
		return LabelEasy
	case d < 7.0:
		return LabelMedium
	default:
		return LabelHard
	}
}

// ParseLabel normalizes a client-supplied label string. Unrecognized values
// fall back to medium rather than erroring.
func ParseLabel(s string) Label {
	switch Label(strings.ToLower(s)) {
	case LabelEasy:
		return LabelEasy
	case LabelHard:
		return LabelHard
	default:
		return LabelMedium
	}
}

// CanonicalDifficulty is the numeric value used when seeding a difficulty
// from a label, e.g. when resetting after a level change. It is not the
// inverse of LabelOf.
func CanonicalDifficulty(label Label) float64 {
	switch ParseLabel(string(label)) {
	case LabelEasy:
		return 3.0
	case LabelHard:
		return 8.0
	default:
		return 5.0
	}
}

// expectedTimes holds the per-level expected response time in milliseconds.
// Level 3 scenarios take far longer than level 1 MCQs.
var expectedTimes = map[int]map[Label]int{
	1: {LabelEasy: 15_000, LabelMedium: 25_000, LabelHard: 45_000},
	2: {LabelEasy: 60_000, LabelMedium: 90_000, LabelHard: 150_000},
	3: {LabelEasy: 300_000, LabelMedium: 480_000, LabelHard: 720_000},
}

// ExpectedTimeMs looks up the expected response time for a level and label.
// Out-of-range levels clamp to the nearest valid level; unrecognized labels
// use that level's medium value.
func ExpectedTimeMs(level int, label Label) int {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	return expectedTimes[level][ParseLabel(string(label))]
}
