package models

// HintLevels is the number of progressive hints on every card.
const HintLevels = 3

// Hint is one progressively easier clue and the points it is worth.
type Hint struct {
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// Card is a single question unit. Hints[0] is the hardest clue.
type Card struct {
	ID          string           `json:"id"`
	Category    string           `json:"category"`
	Hints       [HintLevels]Hint `json:"hints"`
	Answer      string           `json:"answer"`
	Explanation string           `json:"explanation"`
}

// Question returns the text shown for the card in history and results, the level 1 hint.
func (c Card) Question() string {
	return c.Hints[0].Text
}

// Hint returns the hint for a 1-based level. Out of range levels are clamped.
func (c Card) Hint(level int) Hint {
	if level < 1 {
		level = 1
	}
	if level > HintLevels {
		level = HintLevels
	}
	return c.Hints[level-1]
}
