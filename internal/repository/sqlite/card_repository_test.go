package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/duelometabolico/internal/catalog"
	"github.com/vytor/duelometabolico/internal/db"
	"github.com/vytor/duelometabolico/internal/models"
	"github.com/vytor/duelometabolico/internal/repository/memory"
	"github.com/vytor/duelometabolico/internal/repository/sqlite"
	"github.com/vytor/duelometabolico/internal/testutil"
)

type CardRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo *sqlite.CardRepository
}

func (s *CardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewCardRepository(s.db.DB)
}

func (s *CardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *CardRepositorySuite) TestMigrationsApplied() {
	versions, err := s.db.AppliedMigrations(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal([]string{"0001_cards.sql"}, versions)
}

func (s *CardRepositorySuite) TestEmptyCatalog() {
	ctx := context.Background()

	cards, err := s.repo.All(ctx)
	s.Require().NoError(err)
	s.Assert().Empty(cards)

	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(0, n)
}

func (s *CardRepositorySuite) TestSeedAndRead() {
	ctx := context.Background()
	cards := []models.Card{
		testutil.Card("kre-01", "Ciclo de Krebs", "Acetil-CoA"),
		testutil.Card("gli-01", "Glicólise", "Glicose"),
		testutil.Card("kre-02", "Ciclo de Krebs", "Citrato"),
	}
	s.Require().NoError(s.repo.Seed(ctx, cards))

	all, err := s.repo.All(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(cards, all, "order and hints round-trip")

	krebs, err := s.repo.ByCategory(ctx, "Ciclo de Krebs")
	s.Require().NoError(err)
	s.Require().Len(krebs, 2)
	s.Assert().Equal("kre-01", krebs[0].ID)
	s.Assert().Equal("kre-02", krebs[1].ID)

	cats, err := s.repo.Categories(ctx)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Ciclo de Krebs", "Glicólise"}, cats)
}

func (s *CardRepositorySuite) TestSeedIsIdempotent() {
	ctx := context.Background()
	card := testutil.Card("gli-01", "Glicólise", "Glicose")
	s.Require().NoError(s.repo.Seed(ctx, []models.Card{card}))

	card.Answer = "D-glicose"
	card.Hints[0].Text = "nova dica"
	s.Require().NoError(s.repo.Seed(ctx, []models.Card{card}))

	all, err := s.repo.All(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Assert().Equal("D-glicose", all[0].Answer)
	s.Assert().Equal("nova dica", all[0].Hints[0].Text)
}

func (s *CardRepositorySuite) TestSeedRejectsInvalidCard() {
	ctx := context.Background()
	bad := testutil.Card("gli-01", "Glicólise", "")

	err := s.repo.Seed(ctx, []models.Card{testutil.Card("ok", "Glicólise", "Glicose"), bad})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "answer is required")

	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(0, n, "nothing is written when validation fails")
}

func (s *CardRepositorySuite) TestMatchesMemoryRepository() {
	ctx := context.Background()
	cards, err := catalog.Default()
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Seed(ctx, cards))

	mem := memory.NewCardRepository(cards)

	wantCats, _ := mem.Categories(ctx)
	gotCats, err := s.repo.Categories(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(wantCats, gotCats)

	for _, cat := range wantCats {
		want, _ := mem.ByCategory(ctx, cat)
		got, err := s.repo.ByCategory(ctx, cat)
		s.Require().NoError(err)
		s.Assert().Equal(want, got, cat)
	}
}

func TestCardRepositorySuite(t *testing.T) {
	suite.Run(t, new(CardRepositorySuite))
}
