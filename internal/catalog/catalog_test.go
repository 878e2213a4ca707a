package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/duelometabolico/internal/catalog"
	"github.com/vytor/duelometabolico/internal/models"
)

func TestDefault_BundledDatasetIsValid(t *testing.T) {
	cards, err := catalog.Default()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cards), 10, "quick duel needs at least ten cards")

	for _, c := range cards {
		assert.Equal(t, 15, c.Hints[0].Points, c.ID)
		assert.Equal(t, 10, c.Hints[1].Points, c.ID)
		assert.Equal(t, 5, c.Hints[2].Points, c.ID)
		assert.NotEmpty(t, c.Explanation, c.ID)
	}

	cats := catalog.Categories(cards)
	assert.Equal(t, "Glicólise", cats[0])
	assert.Contains(t, cats, "Ciclo de Krebs")
	assert.Len(t, catalog.FilterByCategory(cards, "Glicólise"), 5)
}

const validCard = `{"id":"x-1","category":"Teste","answer":"Glicose","explanation":"e",
 "hints":[{"text":"a","points":15},{"text":"b","points":10},{"text":"c","points":5}]}`

func TestDecode(t *testing.T) {
	cards, err := catalog.Decode(strings.NewReader("[" + validCard + "]"))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "x-1", cards[0].ID)
	assert.Equal(t, "a", cards[0].Question())
	assert.Equal(t, models.Hint{Text: "c", Points: 5}, cards[0].Hint(3))
}

func TestDecode_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "not json",
			input:   "{",
			wantErr: "decode cards",
		},
		{
			name:    "unknown field",
			input:   `[{"id":"x","bogus":1}]`,
			wantErr: "decode cards",
		},
		{
			name:    "missing id",
			input:   `[{"category":"T","answer":"a","hints":[{"text":"a","points":15},{"text":"b","points":10},{"text":"c","points":5}]}]`,
			wantErr: "id is required",
		},
		{
			name:    "missing answer",
			input:   `[{"id":"x","category":"T","hints":[{"text":"a","points":15},{"text":"b","points":10},{"text":"c","points":5}]}]`,
			wantErr: "answer is required",
		},
		{
			name:    "two hints",
			input:   `[{"id":"x","category":"T","answer":"a","hints":[{"text":"a","points":15},{"text":"b","points":10}]}]`,
			wantErr: "expected 3 hints, got 2",
		},
		{
			name:    "points not descending",
			input:   `[{"id":"x","category":"T","answer":"a","hints":[{"text":"a","points":5},{"text":"b","points":10},{"text":"c","points":15}]}]`,
			wantErr: "worth less",
		},
		{
			name:    "duplicate id",
			input:   "[" + validCard + "," + validCard + "]",
			wantErr: "duplicate id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte("["+validCard+"]"), 0o600))

	cards, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCategories_FirstAppearanceOrder(t *testing.T) {
	cards := []models.Card{
		{ID: "1", Category: "B"},
		{ID: "2", Category: "A"},
		{ID: "3", Category: "B"},
		{ID: "4", Category: ""},
	}
	assert.Equal(t, []string{"B", "A"}, catalog.Categories(cards))
	assert.Nil(t, catalog.Categories(nil))
}
