package game

import (
	"fmt"
	"math"

	"github.com/vytor/duelometabolico/internal/models"
)

// Snapshot is a read-only copy of the engine state. Mutating it has no
// effect on the engine.
type Snapshot struct {
	Phase Phase
	Setup Setup

	SessionID          string
	Mode               Mode
	Type               GameType
	Category           string
	Players            []string
	Cards              []models.Card
	CurrentCardIndex   int
	CurrentHintLevel   int
	RemainingAttempts  int
	CurrentPlayerIndex int
	Scores             map[string]int
	History            []models.TurnRecord
	ShowExplanation    bool
	TurnPassed         bool
	Feedback           *models.Feedback
	GameStarted        bool
	GameFinished       bool
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: PhaseUnconfigured,
		Setup: e.setup.clone(),
	}
	if e.configured {
		snap.Phase = PhaseConfiguring
	}
	s := e.session
	if s == nil {
		return snap
	}

	snap.Phase = PhaseInProgress
	if s.finished {
		snap.Phase = PhaseFinished
	}
	snap.SessionID = s.id
	snap.Mode = s.cfg.Mode()
	snap.Type = s.cfg.Type()
	snap.Category = s.cfg.Category()
	snap.Players = s.cfg.Players()
	snap.Cards = append([]models.Card(nil), s.cards...)
	snap.CurrentCardIndex = s.cardIndex
	snap.CurrentHintLevel = s.hintLevel
	snap.RemainingAttempts = s.attempts
	snap.CurrentPlayerIndex = s.playerIndex
	snap.Scores = make(map[string]int, len(s.scores))
	for k, v := range s.scores {
		snap.Scores[k] = v
	}
	snap.History = append([]models.TurnRecord{}, s.history...)
	snap.ShowExplanation = s.showExplanation
	snap.TurnPassed = s.rotated
	if s.feedback != nil {
		fb := *s.feedback
		snap.Feedback = &fb
	}
	snap.GameStarted = true
	snap.GameFinished = s.finished
	return snap
}

// IsActive reports whether a game is being played.
func (s Snapshot) IsActive() bool {
	return s.GameStarted && !s.GameFinished
}

// CurrentPlayer returns the name of the player whose turn it is.
func (s Snapshot) CurrentPlayer() string {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return ""
	}
	return s.Players[s.CurrentPlayerIndex]
}

// CurrentCard returns the card being played.
func (s Snapshot) CurrentCard() (models.Card, bool) {
	if !s.GameStarted || s.CurrentCardIndex < 0 || s.CurrentCardIndex >= len(s.Cards) {
		return models.Card{}, false
	}
	return s.Cards[s.CurrentCardIndex], true
}

// CurrentHint returns the hint at the active level of the current card.
func (s Snapshot) CurrentHint() (models.Hint, bool) {
	card, ok := s.CurrentCard()
	if !ok {
		return models.Hint{}, false
	}
	return card.Hint(s.CurrentHintLevel), true
}

// TotalScore returns the accumulated points of player.
func (s Snapshot) TotalScore(player string) int {
	return s.Scores[player]
}

func (s Snapshot) CorrectAnswersCount() int {
	n := 0
	for _, h := range s.History {
		if h.IsCorrect {
			n++
		}
	}
	return n
}

func (s Snapshot) TotalCards() int {
	return len(s.Cards)
}

// AccuracyRate is the rounded percentage of deck cards answered correctly, 0 for an empty deck.
func (s Snapshot) AccuracyRate() int {
	return percent(s.CorrectAnswersCount(), s.TotalCards())
}

// Progress renders the position in the deck, e.g. "3 de 10".
func (s Snapshot) Progress() string {
	if !s.GameStarted {
		return ""
	}
	return fmt.Sprintf("%d de %d", s.CurrentCardIndex+1, len(s.Cards))
}

// PlayerStats returns per-player totals in turn order. Accuracy is relative
// to the cards each player actually completed.
func (s Snapshot) PlayerStats() []models.PlayerStats {
	out := make([]models.PlayerStats, 0, len(s.Players))
	for _, p := range s.Players {
		st := models.PlayerStats{Name: p, Score: s.Scores[p]}
		for _, h := range s.History {
			if h.Player != p {
				continue
			}
			st.Total++
			if h.IsCorrect {
				st.Correct++
			}
		}
		st.Accuracy = percent(st.Correct, st.Total)
		out = append(out, st)
	}
	return out
}

// Winner returns the top scorer of a pair game. tie is true when both
// players have the same score, in which case name is empty.
func (s Snapshot) Winner() (name string, tie bool) {
	if s.Mode != ModePair || len(s.Players) != 2 {
		return "", false
	}
	a, b := s.Scores[s.Players[0]], s.Scores[s.Players[1]]
	switch {
	case a > b:
		return s.Players[0], false
	case b > a:
		return s.Players[1], false
	default:
		return "", true
	}
}

// Results summarises the session for the results screen.
func (s Snapshot) Results() models.Results {
	winner, tie := s.Winner()
	return models.Results{
		SessionID:      s.SessionID,
		Pair:           s.Mode == ModePair,
		Players:        s.PlayerStats(),
		Winner:         winner,
		Tie:            tie,
		CorrectAnswers: s.CorrectAnswersCount(),
		TotalCards:     s.TotalCards(),
		Accuracy:       s.AccuracyRate(),
		History:        append([]models.TurnRecord{}, s.History...),
	}
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
