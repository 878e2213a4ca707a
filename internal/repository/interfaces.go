package repository

import (
	"context"

	"github.com/vytor/duelometabolico/internal/models"
)

// CardRepository gives read access to the card catalog
type CardRepository interface {
	All(ctx context.Context) ([]models.Card, error)
	ByCategory(ctx context.Context, category string) ([]models.Card, error)
	Categories(ctx context.Context) ([]string, error)
}
