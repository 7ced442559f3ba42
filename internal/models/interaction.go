package models

import "time"

// Interaction is the audit record persisted for every submitted answer. It
// keeps the raw inputs next to the difficulty movement they produced so a
// learner's trajectory can be replayed.
type Interaction struct {
	ID              string              `bson:"_id,omitempty" json:"id"`
	UserID          string              `bson:"user_id" json:"user_id"`
	QuestionID      string              `bson:"question_id" json:"question_id"`
	FinalAnswer     string              `bson:"final_answer" json:"final_answer"`
	IsCorrect       bool                `bson:"is_correct" json:"is_correct"`
	TimeTakenMs     int                 `bson:"time_taken_ms" json:"time_taken_ms"`
	ConfidenceLevel string              `bson:"confidence_level" json:"confidence_level"`
	InteractionLog  []InteractionRecord `bson:"interaction_log,omitempty" json:"interaction_log,omitempty"`
	Delta           float64             `bson:"delta" json:"delta"`
	NextDifficulty  float64             `bson:"next_difficulty" json:"next_difficulty"`
	AnsweredAt      time.Time           `bson:"answered_at" json:"answered_at"`
}
