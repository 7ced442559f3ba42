package models

import "time"

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

// DecisionPoint is one step of a level-3 branching scenario. Each decision
// builds on the consequence of the previous one.
type DecisionPoint struct {
	Prompt       string `bson:"prompt" json:"prompt"`
	Context      string `bson:"context,omitempty" json:"context,omitempty"`
	SampleAnswer string `bson:"sample_answer,omitempty" json:"sample_answer,omitempty"`
}

// Question is the unit stored by the question store. Content fields vary by
// type: "mcq" fills Options and CorrectAnswer, "open" fills SampleAnswer,
// "scenario" fills Scenario and DecisionPoints. Questions are immutable once
// created; the engine only reads them.
type Question struct {
	ID             string          `bson:"_id,omitempty" json:"id"`
	Topic          string          `bson:"topic" json:"topic"`
	Type           string          `bson:"type" json:"type"`
	Level          int             `bson:"level" json:"level"`
	Content        string          `bson:"content" json:"content"`
	Options        []Option        `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer  string          `bson:"correct_answer,omitempty" json:"correct_answer,omitempty"`
	Explanation    string          `bson:"explanation,omitempty" json:"explanation,omitempty"`
	SampleAnswer   string          `bson:"sample_answer,omitempty" json:"sample_answer,omitempty"`
	Scenario       string          `bson:"scenario,omitempty" json:"scenario,omitempty"`
	DecisionPoints []DecisionPoint `bson:"decision_points,omitempty" json:"decision_points,omitempty"`
	Difficulty     float64         `bson:"difficulty" json:"difficulty"`
	ExpectedTimeMs int             `bson:"expected_time_ms" json:"expected_time_ms"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
}

const (
	QuestionTypeMCQ      = "mcq"
	QuestionTypeOpen     = "open"
	QuestionTypeScenario = "scenario"
)
