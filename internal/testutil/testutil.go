package testutil

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/duelometabolico/internal/db"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/models"
)

// NewTestDB creates an in-memory SQLite card database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// QuietLogger discards everything.
func QuietLogger() *logger.Logger {
	return logger.New(logger.WithOutput(io.Discard), logger.WithColors(false))
}

// Card builds a valid card worth 15/10/5 points.
func Card(id, category, answer string) models.Card {
	return models.Card{
		ID:       id,
		Category: category,
		Hints: [models.HintLevels]models.Hint{
			{Text: id + " dica 1", Points: 15},
			{Text: id + " dica 2", Points: 10},
			{Text: id + " dica 3", Points: 5},
		},
		Answer:      answer,
		Explanation: "explicação de " + id,
	}
}
