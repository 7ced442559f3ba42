package models

// Interaction log action recognized by the difficulty engine. Any other
// action value is carried through unchanged but never interpreted.
const ActionChangedOption = "CHANGED_OPTION"

// Confidence levels as reported by the client. Anything else is treated as
// MEDIUM by the engine.
const (
	ConfidenceLow    = "LOW"
	ConfidenceMedium = "MEDIUM"
	ConfidenceHigh   = "HIGH"
)

// InteractionRecord is one client-side event captured while the learner was
// answering (option changes, focus loss, and so on).
type InteractionRecord struct {
	Action string `bson:"action" json:"action"`
	Option string `bson:"option,omitempty" json:"option,omitempty"`
	AtMs   int64  `bson:"at_ms,omitempty" json:"at_ms,omitempty"`
}

// AnswerEvent is one graded answer as consumed by the difficulty engine.
// Score is +1 for a correct answer and -1 for a wrong one.
type AnswerEvent struct {
	Score           int                 `json:"score"`
	TimeTakenMs     int                 `json:"time_taken_ms"`
	ExpectedTimeMs  int                 `json:"expected_time_ms"`
	ConfidenceLevel string              `json:"confidence_level"`
	InteractionLog  []InteractionRecord `json:"interaction_log"`
}
