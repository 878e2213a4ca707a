// Package game implements the game session state machine: configuration
// staging, deck building, hint progression, attempt counting, scoring, turn
// rotation and history.
//
// An Engine is not safe for concurrent use. Every command runs synchronously,
// either applies completely or leaves the state untouched, and returns a
// Snapshot of the resulting state.
package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/duelometabolico/internal/answer"
	"github.com/vytor/duelometabolico/internal/errors"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/models"
)

// Matcher reports whether a submitted answer is the card's correct answer.
type Matcher func(input, correct string) bool

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to sample and shuffle decks.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed makes deck ordering deterministic.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithMatcher replaces answer.Match.
func WithMatcher(m Matcher) Option {
	return func(e *Engine) {
		e.match = m
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithDefaultPlayerName names the implicit player of individual games.
func WithDefaultPlayerName(name string) Option {
	return func(e *Engine) {
		if name = strings.TrimSpace(name); name != "" {
			e.defaultPlayer = name
		}
	}
}

// WithIDGenerator replaces the session ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// Engine owns the staged setup and at most one session.
type Engine struct {
	rng           *rand.Rand
	match         Matcher
	log           *logger.Logger
	defaultPlayer string
	newID         func() string

	setup       Setup
	configured  bool
	session     *session
	feedbackSeq uint64
}

type session struct {
	id              string
	cfg             Configuration
	cards           []models.Card
	cardIndex       int
	hintLevel       int
	attempts        int
	playerIndex     int
	scores          map[string]int
	history         []models.TurnRecord
	showExplanation bool
	rotated         bool
	feedback        *models.Feedback
	finished        bool
}

// New creates an unconfigured engine.
func New(opts ...Option) *Engine {
	now := uint64(time.Now().UnixNano())
	e := &Engine{
		rng:           rand.New(rand.NewPCG(now, now>>1)),
		match:         answer.Match,
		log:           logger.Default().WithPrefix("game"),
		defaultPlayer: DefaultPlayerName,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetMode stages the game mode.
func (e *Engine) SetMode(m Mode) (Snapshot, error) {
	if err := e.guardStaging("setMode"); err != nil {
		return e.Snapshot(), err
	}
	e.setup.Mode = m
	e.configured = true
	return e.Snapshot(), nil
}

// SetType stages the game type.
func (e *Engine) SetType(t GameType) (Snapshot, error) {
	if err := e.guardStaging("setType"); err != nil {
		return e.Snapshot(), err
	}
	e.setup.Type = t
	e.configured = true
	return e.Snapshot(), nil
}

// SetCategory stages the category used by focused practice.
func (e *Engine) SetCategory(category string) (Snapshot, error) {
	if err := e.guardStaging("setCategory"); err != nil {
		return e.Snapshot(), err
	}
	e.setup.Category = category
	e.configured = true
	return e.Snapshot(), nil
}

// SetPlayers stages the player names.
func (e *Engine) SetPlayers(names []string) (Snapshot, error) {
	if err := e.guardStaging("setPlayers"); err != nil {
		return e.Snapshot(), err
	}
	e.setup.Players = append([]string(nil), names...)
	e.configured = true
	return e.Snapshot(), nil
}

// StartGame validates the staged setup, builds the deck from pool and opens a session.
func (e *Engine) StartGame(pool []models.Card) (Snapshot, error) {
	if err := e.guardStaging("startGame"); err != nil {
		return e.Snapshot(), err
	}
	cfg, err := e.setup.configure(e.defaultPlayer)
	if err != nil {
		e.log.Debug("start rejected: %v", err)
		return e.Snapshot(), err
	}
	cards := buildDeck(pool, cfg, e.rng)
	if len(cards) == 0 {
		e.log.Debug("start rejected: empty deck for type=%s category=%q", cfg.Type(), cfg.Category())
		return e.Snapshot(), errors.NewInvalidConfigurationError(reasonEmptyDeck)
	}

	scores := make(map[string]int, 2)
	for _, p := range cfg.Players() {
		scores[p] = 0
	}
	e.session = &session{
		id:        e.newID(),
		cfg:       cfg,
		cards:     cards,
		hintLevel: 1,
		attempts:  AttemptsPerHint,
		scores:    scores,
		history:   []models.TurnRecord{},
	}
	e.log.Info("game started: session=%s mode=%s type=%s category=%q cards=%d",
		e.session.id, cfg.Mode(), cfg.Type(), cfg.Category(), len(cards))
	return e.Snapshot(), nil
}

// RequestHint reveals the next hint level and refills the attempts.
func (e *Engine) RequestHint() (Snapshot, error) {
	s, err := e.guardPlaying("requestHint")
	if err != nil {
		return e.Snapshot(), err
	}
	if s.showExplanation {
		return e.Snapshot(), errors.NewInvalidStateError("requestHint", "card already resolved")
	}
	if s.hintLevel >= models.HintLevels {
		return e.Snapshot(), errors.NewInvalidStateError("requestHint", "no hints left")
	}
	s.hintLevel++
	s.attempts = AttemptsPerHint
	e.log.Debug("hint requested: card=%s level=%d", s.cards[s.cardIndex].ID, s.hintLevel)
	return e.Snapshot(), nil
}

// SubmitAnswer checks raw against the current card at the active hint level.
func (e *Engine) SubmitAnswer(raw string) (Snapshot, error) {
	s, err := e.guardPlaying("submitAnswer")
	if err != nil {
		return e.Snapshot(), err
	}
	input := strings.TrimSpace(raw)
	if input == "" {
		return e.Snapshot(), errors.NewValidationError("answer", "Digite uma resposta antes de continuar.")
	}
	if s.showExplanation {
		return e.Snapshot(), errors.NewInvalidStateError("submitAnswer", "card already resolved")
	}

	card := s.cards[s.cardIndex]
	player := s.cfg.Players()[s.playerIndex]

	if e.match(input, card.Answer) {
		points := card.Hint(s.hintLevel).Points
		s.scores[player] += points
		e.resolve(s, card, player, input, true, points)
		e.setFeedback(s, models.FeedbackSuccess, fmt.Sprintf("Correto! +%d pontos", points))
		e.log.Debug("correct answer: card=%s player=%s level=%d points=%d", card.ID, player, s.hintLevel, points)
		return e.Snapshot(), nil
	}

	if s.attempts > 0 {
		s.attempts--
	}
	switch {
	case s.attempts > 0:
		e.setFeedback(s, models.FeedbackError,
			fmt.Sprintf("Resposta incorreta. %d tentativa(s) restante(s).", s.attempts))
	case s.hintLevel < models.HintLevels:
		s.hintLevel++
		s.attempts = AttemptsPerHint
		e.setFeedback(s, models.FeedbackError,
			fmt.Sprintf("Tentativas esgotadas! Dica %d liberada.", s.hintLevel))
		e.log.Debug("attempts exhausted: card=%s advancing to level %d", card.ID, s.hintLevel)
	default:
		e.resolve(s, card, player, input, false, 0)
		e.setFeedback(s, models.FeedbackError,
			fmt.Sprintf("Que pena! A resposta correta era: %s", card.Answer))
		e.log.Debug("card exhausted: card=%s player=%s", card.ID, player)
	}
	return e.Snapshot(), nil
}

func (e *Engine) resolve(s *session, card models.Card, player, input string, correct bool, points int) {
	s.history = append(s.history, models.TurnRecord{
		CardID:     card.ID,
		Category:   card.Category,
		Player:     player,
		Question:   card.Question(),
		UserAnswer: input,
		IsCorrect:  correct,
		HintsUsed:  s.hintLevel,
		Points:     points,
	})
	s.showExplanation = true
}

// NextPlayer passes the turn to the other player of a pair game. It is
// allowed once per resolved card.
func (e *Engine) NextPlayer() (Snapshot, error) {
	s, err := e.guardPlaying("nextPlayer")
	if err != nil {
		return e.Snapshot(), err
	}
	if err := checkRotation(s); err != nil {
		return e.Snapshot(), err
	}
	e.rotate(s)
	return e.Snapshot(), nil
}

func checkRotation(s *session) error {
	if s.cfg.Mode() != ModePair {
		return errors.NewInvalidStateError("nextPlayer", "only available in pair mode")
	}
	if !s.showExplanation {
		return errors.NewInvalidStateError("nextPlayer", "card not resolved yet")
	}
	if s.rotated {
		return errors.NewInvalidStateError("nextPlayer", "turn already passed for this card")
	}
	return nil
}

func (e *Engine) rotate(s *session) {
	s.playerIndex = (s.playerIndex + 1) % len(s.cfg.Players())
	s.rotated = true
	e.log.Debug("turn passed to %s", s.cfg.Players()[s.playerIndex])
}

// NextCard moves past a resolved card, or finishes the game after the last one.
func (e *Engine) NextCard() (Snapshot, error) {
	s, err := e.guardPlaying("nextCard")
	if err != nil {
		return e.Snapshot(), err
	}
	if !s.showExplanation {
		return e.Snapshot(), errors.NewInvalidStateError("nextCard", "card not resolved yet")
	}
	e.advance(s)
	return e.Snapshot(), nil
}

func (e *Engine) advance(s *session) {
	if s.cardIndex+1 >= len(s.cards) {
		s.finished = true
		e.log.Info("game finished: session=%s scores=%v", s.id, s.scores)
		return
	}
	s.cardIndex++
	s.hintLevel = 1
	s.attempts = AttemptsPerHint
	s.showExplanation = false
	s.rotated = false
	s.feedback = nil
}

// AdvanceTurn completes a resolved card in one step: in pair mode it passes
// the turn (unless NextPlayer already did) and then behaves as NextCard.
func (e *Engine) AdvanceTurn() (Snapshot, error) {
	s, err := e.guardPlaying("advanceTurn")
	if err != nil {
		return e.Snapshot(), err
	}
	if !s.showExplanation {
		return e.Snapshot(), errors.NewInvalidStateError("advanceTurn", "card not resolved yet")
	}
	if s.cfg.Mode() == ModePair && !s.rotated {
		e.rotate(s)
	}
	e.advance(s)
	return e.Snapshot(), nil
}

// ClearFeedback drops the feedback message if seq still identifies it.
// A stale seq leaves a newer message in place.
func (e *Engine) ClearFeedback(seq uint64) Snapshot {
	if s := e.session; s != nil && s.feedback != nil && s.feedback.Seq == seq {
		s.feedback = nil
	}
	return e.Snapshot()
}

// ResetGame discards the session and the staged setup.
func (e *Engine) ResetGame() Snapshot {
	if e.session != nil {
		e.log.Debug("game reset: session=%s", e.session.id)
	}
	e.setup = Setup{}
	e.configured = false
	e.session = nil
	return e.Snapshot()
}

func (e *Engine) setFeedback(s *session, kind models.FeedbackKind, msg string) {
	e.feedbackSeq++
	s.feedback = &models.Feedback{Seq: e.feedbackSeq, Kind: kind, Message: msg}
}

func (e *Engine) guardStaging(command string) error {
	if e.session == nil {
		return nil
	}
	if e.session.finished {
		return errors.NewFinishedError(command)
	}
	return errors.NewInvalidStateError(command, "a game is already in progress")
}

func (e *Engine) guardPlaying(command string) (*session, error) {
	if e.session == nil {
		return nil, errors.NewNotStartedError(command)
	}
	if e.session.finished {
		return nil, errors.NewFinishedError(command)
	}
	return e.session, nil
}
