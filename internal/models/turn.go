package models

// TurnRecord is the finalized outcome of one card for one player.
type TurnRecord struct {
	CardID     string `json:"card_id"`
	Category   string `json:"category"`
	Player     string `json:"player"`
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
	HintsUsed  int    `json:"hints_used"`
	Points     int    `json:"points"`
}

type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// Feedback is the last transient outcome message. Seq increases with every
// new message so a deferred clear can tell whether it is still current.
type Feedback struct {
	Seq     uint64       `json:"seq"`
	Kind    FeedbackKind `json:"kind"`
	Message string       `json:"message"`
}

type PlayerStats struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
	Accuracy int    `json:"accuracy"`
}

// Results summarises a finished (or abandoned) game for the results screen.
type Results struct {
	SessionID      string        `json:"session_id"`
	Pair           bool          `json:"pair"`
	Players        []PlayerStats `json:"players"`
	Winner         string        `json:"winner"`
	Tie            bool          `json:"tie"`
	CorrectAnswers int           `json:"correct_answers"`
	TotalCards     int           `json:"total_cards"`
	Accuracy       int           `json:"accuracy"`
	History        []TurnRecord  `json:"history"`
}
