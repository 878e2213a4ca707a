package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/duelometabolico/internal/models"
	"github.com/vytor/duelometabolico/internal/repository/memory"
)

func TestCardRepository(t *testing.T) {
	ctx := context.Background()
	src := []models.Card{
		{ID: "a", Category: "Glicólise"},
		{ID: "b", Category: "Ciclo de Krebs"},
		{ID: "c", Category: "Glicólise"},
	}
	repo := memory.NewCardRepository(src)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, src, all)

	all[0].ID = "changed"
	again, _ := repo.All(ctx)
	assert.Equal(t, "a", again[0].ID, "callers get copies")

	gli, err := repo.ByCategory(ctx, "Glicólise")
	require.NoError(t, err)
	assert.Len(t, gli, 2)

	none, err := repo.ByCategory(ctx, "Beta-oxidação")
	require.NoError(t, err)
	assert.Empty(t, none)

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Glicólise", "Ciclo de Krebs"}, cats)
}
