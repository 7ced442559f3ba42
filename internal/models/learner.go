package models

import "time"

// LearnerState is the per-learner record the engine mutates: the continuous
// difficulty position, the pedagogical level and the rolling window of recent
// score percentages used for level transitions.
type LearnerState struct {
	UserID            string    `bson:"_id" json:"user_id"`
	CurrentDifficulty float64   `bson:"current_difficulty" json:"current_difficulty"`
	CurrentLevel      int       `bson:"current_level" json:"current_level"`
	RecentScorePcts   []float64 `bson:"recent_score_pcts" json:"recent_score_pcts"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// NewLearnerState seeds a fresh learner at level 1 on the middle of the
// difficulty scale.
func NewLearnerState(userID string) *LearnerState {
	now := time.Now()
	return &LearnerState{
		UserID:            userID,
		CurrentDifficulty: 5.0,
		CurrentLevel:      1,
		RecentScorePcts:   []float64{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
