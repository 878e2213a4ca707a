package game

import (
	"math/rand/v2"

	"github.com/vytor/duelometabolico/internal/models"
)

// buildDeck selects and orders the cards for a configuration.
// Quick samples QuickDeckSize distinct cards; Focused takes every card of
// the category in shuffled order. Repeated IDs in pool count once.
func buildDeck(pool []models.Card, cfg Configuration, rng *rand.Rand) []models.Card {
	seen := make(map[string]bool, len(pool))
	candidates := make([]models.Card, 0, len(pool))
	for _, c := range pool {
		if seen[c.ID] {
			continue
		}
		if cfg.Type() == TypeFocused && c.Category != cfg.Category() {
			continue
		}
		seen[c.ID] = true
		candidates = append(candidates, c)
	}

	if cfg.Type() == TypeQuick && len(candidates) > QuickDeckSize {
		deck := make([]models.Card, 0, QuickDeckSize)
		for _, i := range rng.Perm(len(candidates))[:QuickDeckSize] {
			deck = append(deck, candidates[i])
		}
		return deck
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates
}
