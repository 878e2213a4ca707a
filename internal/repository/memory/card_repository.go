// Package memory serves the card catalog from a slice loaded at startup.
package memory

import (
	"context"

	"github.com/vytor/duelometabolico/internal/catalog"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/models"
	"github.com/vytor/duelometabolico/internal/repository"
)

type cardRepository struct {
	cards []models.Card
}

// NewCardRepository creates a CardRepository over a copy of cards
func NewCardRepository(cards []models.Card) repository.CardRepository {
	return &cardRepository{cards: append([]models.Card(nil), cards...)}
}

func (r *cardRepository) All(ctx context.Context) ([]models.Card, error) {
	logger.FromContext(ctx).WithPrefix("card_repo").Debug("listing %d cards", len(r.cards))
	return append([]models.Card(nil), r.cards...), nil
}

func (r *cardRepository) ByCategory(ctx context.Context, category string) ([]models.Card, error) {
	cards := catalog.FilterByCategory(r.cards, category)
	logger.FromContext(ctx).WithPrefix("card_repo").Debug("found %d cards in category %q", len(cards), category)
	return cards, nil
}

func (r *cardRepository) Categories(ctx context.Context) ([]string, error) {
	return catalog.Categories(r.cards), nil
}
