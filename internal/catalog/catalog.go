// Package catalog loads the static card dataset.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vytor/duelometabolico/internal/models"
)

//go:embed data/cards.json
var embeddedCards []byte

type rawCard struct {
	ID          string        `json:"id"`
	Category    string        `json:"category"`
	Hints       []models.Hint `json:"hints"`
	Answer      string        `json:"answer"`
	Explanation string        `json:"explanation"`
}

// Default returns the cards bundled with the binary.
func Default() ([]models.Card, error) {
	return Decode(bytes.NewReader(embeddedCards))
}

// LoadFile reads a JSON card file with the same layout as the bundled dataset.
func LoadFile(path string) ([]models.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses and validates a JSON array of cards.
func Decode(r io.Reader) ([]models.Card, error) {
	var raw []rawCard
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}

	cards := make([]models.Card, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	var problems []string
	for i, rc := range raw {
		c, err := rc.toCard()
		if err != nil {
			problems = append(problems, fmt.Sprintf("card %d (%q): %v", i, rc.ID, err))
			continue
		}
		if seen[c.ID] {
			problems = append(problems, fmt.Sprintf("card %d: duplicate id %q", i, c.ID))
			continue
		}
		seen[c.ID] = true
		cards = append(cards, c)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid cards: %s", strings.Join(problems, "; "))
	}
	return cards, nil
}

func (rc rawCard) toCard() (models.Card, error) {
	c := models.Card{
		ID:          strings.TrimSpace(rc.ID),
		Category:    strings.TrimSpace(rc.Category),
		Answer:      strings.TrimSpace(rc.Answer),
		Explanation: strings.TrimSpace(rc.Explanation),
	}
	copy(c.Hints[:], rc.Hints)
	return c, Validate(c, len(rc.Hints))
}

// Validate checks a card record. hintCount is the number of hints in the
// source record, which must equal models.HintLevels.
func Validate(c models.Card, hintCount int) error {
	switch {
	case c.ID == "":
		return fmt.Errorf("id is required")
	case c.Category == "":
		return fmt.Errorf("category is required")
	case strings.TrimSpace(c.Answer) == "":
		return fmt.Errorf("answer is required")
	case hintCount != models.HintLevels:
		return fmt.Errorf("expected %d hints, got %d", models.HintLevels, hintCount)
	}
	prev := 0
	for i, h := range c.Hints {
		if strings.TrimSpace(h.Text) == "" {
			return fmt.Errorf("hint %d has no text", i+1)
		}
		if h.Points <= 0 {
			return fmt.Errorf("hint %d must be worth points", i+1)
		}
		if i > 0 && h.Points >= prev {
			return fmt.Errorf("hint %d must be worth less than hint %d", i+1, i)
		}
		prev = h.Points
	}
	return nil
}

// Categories lists the distinct categories of cards in first-appearance order.
func Categories(cards []models.Card) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cards {
		if c.Category == "" || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c.Category)
	}
	return out
}

// FilterByCategory returns the cards of one category, preserving order.
func FilterByCategory(cards []models.Card, category string) []models.Card {
	var out []models.Card
	for _, c := range cards {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}
