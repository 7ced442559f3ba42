package models

// AnswerReview tells the learner how their submission was graded.
type AnswerReview struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	YourAnswer    string `json:"your_answer"`
}

// AlgorithmTrace exposes the difficulty update for transparency: the raw
// (pre-clamp) delta, the previous and next difficulty values and the label
// the next value maps to.
type AlgorithmTrace struct {
	Delta    float64 `json:"delta_d"`
	Previous float64 `json:"d_prev"`
	Next     float64 `json:"d_next"`
	Label    string  `json:"label"`
}

// SubmitResult is the full response to one answer submission. NextQuestion
// is nil when the store holds no other question to offer.
type SubmitResult struct {
	Review       AnswerReview   `json:"result"`
	Algorithm    AlgorithmTrace `json:"algorithm"`
	NextQuestion *Question      `json:"next_question,omitempty"`
}
