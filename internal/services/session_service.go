package services

import (
	"context"
	"sync"

	"github.com/vytor/duelometabolico/internal/errors"
	"github.com/vytor/duelometabolico/internal/game"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/models"
	"github.com/vytor/duelometabolico/internal/repository"
)

// SessionService drives one game session on top of the card catalog.
// It is safe for concurrent use.
type SessionService interface {
	Categories(ctx context.Context) ([]string, error)
	SetMode(ctx context.Context, mode game.Mode) (game.Snapshot, error)
	SetType(ctx context.Context, t game.GameType) (game.Snapshot, error)
	SetCategory(ctx context.Context, category string) (game.Snapshot, error)
	SetPlayers(ctx context.Context, names []string) (game.Snapshot, error)
	StartGame(ctx context.Context) (game.Snapshot, error)
	RequestHint(ctx context.Context) (game.Snapshot, error)
	SubmitAnswer(ctx context.Context, answer string) (game.Snapshot, error)
	NextPlayer(ctx context.Context) (game.Snapshot, error)
	NextCard(ctx context.Context) (game.Snapshot, error)
	AdvanceTurn(ctx context.Context) (game.Snapshot, error)
	ClearFeedback(ctx context.Context, seq uint64) game.Snapshot
	ResetGame(ctx context.Context) game.Snapshot
	Snapshot(ctx context.Context) game.Snapshot
	Results(ctx context.Context) (models.Results, error)
}

type sessionService struct {
	mu     sync.Mutex
	cards  repository.CardRepository
	engine *game.Engine
}

// NewSessionService creates a new SessionService
func NewSessionService(cards repository.CardRepository, engine *game.Engine) SessionService {
	return &sessionService{
		cards:  cards,
		engine: engine,
	}
}

func (s *sessionService) Categories(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)
	cats, err := s.cards.Categories(ctx)
	if err != nil {
		log.Error("failed to list categories: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Debug("found %d categories", len(cats))
	return cats, nil
}

func (s *sessionService) SetMode(ctx context.Context, mode game.Mode) (game.Snapshot, error) {
	logger.FromContext(ctx).Debug("set mode: %s", mode)
	return s.run(ctx, "setMode", func() (game.Snapshot, error) { return s.engine.SetMode(mode) })
}

func (s *sessionService) SetType(ctx context.Context, t game.GameType) (game.Snapshot, error) {
	logger.FromContext(ctx).Debug("set type: %s", t)
	return s.run(ctx, "setType", func() (game.Snapshot, error) { return s.engine.SetType(t) })
}

func (s *sessionService) SetCategory(ctx context.Context, category string) (game.Snapshot, error) {
	logger.FromContext(ctx).Debug("set category: %q", category)
	return s.run(ctx, "setCategory", func() (game.Snapshot, error) { return s.engine.SetCategory(category) })
}

func (s *sessionService) SetPlayers(ctx context.Context, names []string) (game.Snapshot, error) {
	logger.FromContext(ctx).Debug("set players: %q", names)
	return s.run(ctx, "setPlayers", func() (game.Snapshot, error) { return s.engine.SetPlayers(names) })
}

// StartGame loads the card pool for the staged setup and starts the game.
// Focused practice only loads the staged category.
func (s *sessionService) StartGame(ctx context.Context) (game.Snapshot, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.engine.Snapshot()
	var pool []models.Card
	if !current.GameStarted {
		var err error
		if current.Setup.Type == game.TypeFocused && current.Setup.Category != "" {
			pool, err = s.cards.ByCategory(ctx, current.Setup.Category)
		} else {
			pool, err = s.cards.All(ctx)
		}
		if err != nil {
			log.Error("failed to load cards: %v", err)
			return current, errors.NewInternalError(err)
		}
		log.Debug("loaded %d cards for setup: type=%s category=%q", len(pool), current.Setup.Type, current.Setup.Category)
	}

	snap, err := s.engine.StartGame(pool)
	if err != nil {
		log.Warn("startGame rejected: %v", err)
		return snap, err
	}
	log.Info("session started: id=%s mode=%s type=%s cards=%d players=%q",
		snap.SessionID, snap.Mode, snap.Type, len(snap.Cards), snap.Players)
	return snap, nil
}

func (s *sessionService) RequestHint(ctx context.Context) (game.Snapshot, error) {
	return s.run(ctx, "requestHint", s.engine.RequestHint)
}

func (s *sessionService) SubmitAnswer(ctx context.Context, answer string) (game.Snapshot, error) {
	snap, err := s.run(ctx, "submitAnswer", func() (game.Snapshot, error) { return s.engine.SubmitAnswer(answer) })
	if err == nil && snap.ShowExplanation {
		last := snap.History[len(snap.History)-1]
		logger.FromContext(ctx).Info("card resolved: session=%s card=%s player=%s correct=%t points=%d",
			snap.SessionID, last.CardID, last.Player, last.IsCorrect, last.Points)
	}
	return snap, err
}

func (s *sessionService) NextPlayer(ctx context.Context) (game.Snapshot, error) {
	return s.run(ctx, "nextPlayer", s.engine.NextPlayer)
}

func (s *sessionService) NextCard(ctx context.Context) (game.Snapshot, error) {
	return s.finishing(ctx, "nextCard", s.engine.NextCard)
}

func (s *sessionService) AdvanceTurn(ctx context.Context) (game.Snapshot, error) {
	return s.finishing(ctx, "advanceTurn", s.engine.AdvanceTurn)
}

func (s *sessionService) ClearFeedback(ctx context.Context, seq uint64) game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.FromContext(ctx).Debug("clearing feedback: seq=%d", seq)
	return s.engine.ClearFeedback(seq)
}

func (s *sessionService) ResetGame(ctx context.Context) game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.FromContext(ctx).Debug("resetting game")
	return s.engine.ResetGame()
}

func (s *sessionService) Snapshot(ctx context.Context) game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Results summarises a finished game.
func (s *sessionService) Results(ctx context.Context) (models.Results, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.engine.Snapshot()
	switch {
	case !snap.GameStarted:
		return models.Results{}, errors.NewNotStartedError("results")
	case !snap.GameFinished:
		return models.Results{}, errors.NewInvalidStateError("results", "game still in progress")
	}
	return snap.Results(), nil
}

func (s *sessionService) run(ctx context.Context, command string, fn func() (game.Snapshot, error)) (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := fn()
	if err != nil {
		logger.FromContext(ctx).Debug("%s rejected: code=%s err=%v", command, errors.CodeOf(err), err)
	}
	return snap, err
}

func (s *sessionService) finishing(ctx context.Context, command string, fn func() (game.Snapshot, error)) (game.Snapshot, error) {
	snap, err := s.run(ctx, command, fn)
	if err == nil && snap.GameFinished {
		res := snap.Results()
		logger.FromContext(ctx).Info("session finished: id=%s correct=%d/%d accuracy=%d%% winner=%q tie=%t",
			res.SessionID, res.CorrectAnswers, res.TotalCards, res.Accuracy, res.Winner, res.Tie)
	}
	return snap, err
}
