package difficulty

import (
	"math"
	"strings"

	"quiz-engine/internal/models"
)

const (
	// MinDifficulty and MaxDifficulty bound the continuous difficulty scale.
	MinDifficulty = 0.0
	MaxDifficulty = 10.0

	// TimeCapMs caps the actual response time before the time term is
	// computed, so an AFK learner does not tank their difficulty.
	TimeCapMs = 180_000
)

// Weights are the term weights of the delta formula. They are passed
// explicitly so the computation stays pure and testable.
type Weights struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

// DefaultWeights returns the production weighting: accuracy dominates,
// speed matters, stated confidence nudges.
func DefaultWeights() Weights {
	return Weights{Alpha: 0.5, Beta: 0.3, Gamma: 0.2}
}

func confidenceScore(level string) int {
	switch level {
	case models.ConfidenceLow:
		return -1
	case models.ConfidenceHigh:
		return 1
	default:
		return 0
	}
}

// ComputeDelta turns one answer event into a signed difficulty delta:
//
//	ΔD = α·A + β·((Texp − min(Tact, cap)) / max(Texp, 1)) + γ_eff·C + P
//
// Positive values push difficulty up, negative values pull it down. A wrong
// answer given with HIGH confidence is a critical misconception: the gamma
// weight is inverted and tripled so the confidence term drives difficulty
// down instead of up. More than two CHANGED_OPTION entries in the
// interaction log add a linear guessing penalty. The result is unbounded
// and rounded to 4 decimal places.
func ComputeDelta(ev models.AnswerEvent, w Weights) float64 {
	accuracyTerm := w.Alpha * float64(ev.Score)

	tActual := min(ev.TimeTakenMs, TimeCapMs)
	timeRatio := float64(ev.ExpectedTimeMs-tActual) / float64(max(ev.ExpectedTimeMs, 1))
	timeTerm := w.Beta * timeRatio

	confidence := strings.ToUpper(ev.ConfidenceLevel)
	gamma := w.Gamma
	if ev.Score == -1 && confidence == models.ConfidenceHigh {
		gamma = -3.0 * w.Gamma
	}
	confidenceTerm := gamma * float64(confidenceScore(confidence))

	optionChanges := 0
	for _, rec := range ev.InteractionLog {
		if rec.Action == models.ActionChangedOption {
			optionChanges++
		}
	}
	interactionPenalty := 0.0
	if optionChanges > 2 {
		interactionPenalty = -0.10 * float64(optionChanges-2)
	}

	return round4(accuracyTerm + timeTerm + confidenceTerm + interactionPenalty)
}

// NextDifficulty applies the delta for one answer event to the learner's
// current difficulty and clamps the result to [MinDifficulty, MaxDifficulty].
// The raw delta is returned alongside the clamped value for audit.
func NextDifficulty(current float64, ev models.AnswerEvent, w Weights) (next float64, delta float64) {
	delta = ComputeDelta(ev, w)
	next = math.Max(MinDifficulty, math.Min(MaxDifficulty, current+delta))
	return round4(next), delta
}

func round4(v float64) float64 {
	return math.Round(v*10_000) / 10_000
}
