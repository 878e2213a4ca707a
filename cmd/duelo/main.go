package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vytor/duelometabolico/internal/catalog"
	"github.com/vytor/duelometabolico/internal/cli"
	"github.com/vytor/duelometabolico/internal/config"
	"github.com/vytor/duelometabolico/internal/db"
	"github.com/vytor/duelometabolico/internal/game"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/models"
	"github.com/vytor/duelometabolico/internal/repository"
	"github.com/vytor/duelometabolico/internal/repository/memory"
	"github.com/vytor/duelometabolico/internal/repository/sqlite"
	"github.com/vytor/duelometabolico/internal/services"
)

func main() {
	cfg := config.Load()

	// The terminal owns stdout, so logs go to stderr.
	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("Duelo Metabólico starting")
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("card_source=%s", cfg.CardSource)
	log.Debug("cards_path=%s", cfg.CardsPath)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("random_seed=%d", cfg.RandomSeed)
	log.Debug("feedback_ttl=%s", cfg.FeedbackTTL)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, log)

	cards, closeCards, err := openCards(ctx, cfg)
	if err != nil {
		log.Error("failed to load cards: %v", err)
		os.Exit(1)
	}
	defer closeCards()

	opts := []game.Option{
		game.WithLogger(log.WithPrefix("game")),
		game.WithDefaultPlayerName(cfg.DefaultPlayerName),
	}
	if cfg.RandomSeed != 0 {
		opts = append(opts, game.WithSeed(cfg.RandomSeed))
	}
	svc := services.NewSessionService(cards, game.New(opts...))
	app := cli.New(svc, os.Stdin, os.Stdout, cli.WithFeedbackTTL(cfg.FeedbackTTL))

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error("terminal session failed: %v", err)
			closeCards()
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("interrupted, exiting")
	}
}

// openCards returns the repository selected by CARD_SOURCE and a cleanup func.
func openCards(ctx context.Context, cfg config.Config) (repository.CardRepository, func(), error) {
	log := logger.FromContext(ctx)
	noop := func() {}

	switch cfg.CardSource {
	case config.SourceFile:
		cards, err := catalog.LoadFile(cfg.CardsPath)
		if err != nil {
			return nil, noop, err
		}
		log.Info("loaded %d cards from %s", len(cards), cfg.CardsPath)
		return memory.NewCardRepository(cards), noop, nil

	case config.SourceSQLite:
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() {
			log.Debug("closing database connection")
			database.Close()
		}
		repo := sqlite.NewCardRepository(database.DB)
		if err := seedIfEmpty(ctx, repo, cfg.CardsPath); err != nil {
			closeDB()
			return nil, noop, err
		}
		return repo, closeDB, nil

	default:
		cards, err := catalog.Default()
		if err != nil {
			return nil, noop, err
		}
		log.Info("loaded %d bundled cards", len(cards))
		return memory.NewCardRepository(cards), noop, nil
	}
}

// seedIfEmpty imports the catalog into an empty database, from path when set
// and from the bundled dataset otherwise.
func seedIfEmpty(ctx context.Context, repo *sqlite.CardRepository, path string) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.FromContext(ctx).Info("card database has %d cards", n)
		return nil
	}

	var cards []models.Card
	if path != "" {
		cards, err = catalog.LoadFile(path)
	} else {
		cards, err = catalog.Default()
	}
	if err != nil {
		return err
	}
	return repo.Seed(ctx, cards)
}
