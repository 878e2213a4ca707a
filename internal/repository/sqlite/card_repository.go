package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/duelometabolico/internal/catalog"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/models"
	"github.com/vytor/duelometabolico/internal/repository"
)

// CardRepository reads cards from the catalog database.
type CardRepository struct {
	db *sql.DB
}

var _ repository.CardRepository = (*CardRepository)(nil)

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) All(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("listing all cards")
	return r.list(ctx, log, nil)
}

func (r *CardRepository) ByCategory(ctx context.Context, category string) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("listing cards: category=%q", category)
	return r.list(ctx, log, squirrel.Eq{"c.category": category})
}

func (r *CardRepository) list(ctx context.Context, log *logger.Logger, where squirrel.Sqlizer) ([]models.Card, error) {
	query := sqlBuilder.Select(
		"c.id", "c.category", "c.answer", "c.explanation", "h.level", "h.text", "h.points",
	).From("cards c").
		Join("card_hints h ON h.card_id = c.id").
		OrderBy("c.position", "c.id", "h.level")
	if where != nil {
		query = query.Where(where)
	}

	q, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Error("failed to query cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var (
			c     models.Card
			level int
			hint  models.Hint
		)
		if err := rows.Scan(&c.ID, &c.Category, &c.Answer, &c.Explanation, &level, &hint.Text, &hint.Points); err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		if level < 1 || level > models.HintLevels {
			return nil, fmt.Errorf("card %s: hint level %d out of range", c.ID, level)
		}
		if n := len(cards); n == 0 || cards[n-1].ID != c.ID {
			cards = append(cards, c)
		}
		cards[len(cards)-1].Hints[level-1] = hint
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug("found %d cards", len(cards))
	return cards, nil
}

func (r *CardRepository) Categories(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")

	q, args, err := sqlBuilder.Select("category").
		From("cards").
		GroupBy("category").
		OrderBy("MIN(position)").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Error("failed to query categories: %v", err)
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Count returns the number of stored cards.
func (r *CardRepository) Count(ctx context.Context) (int, error) {
	q, args, err := sqlBuilder.Select("COUNT(*)").From("cards").ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	err = r.db.QueryRowContext(ctx, q, args...).Scan(&n)
	return n, err
}

// Seed imports cards in one transaction. Existing cards with the same ID are
// replaced, and the slice order becomes the catalog order.
func (r *CardRepository) Seed(ctx context.Context, cards []models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Info("seeding %d cards", len(cards))

	for _, c := range cards {
		if err := catalog.Validate(c, models.HintLevels); err != nil {
			return fmt.Errorf("seed card %q: %w", c.ID, err)
		}
	}

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		for i, c := range cards {
			upsert := sqlBuilder.Insert("cards").
				Columns("id", "category", "answer", "explanation", "position").
				Values(c.ID, c.Category, c.Answer, c.Explanation, i).
				Suffix("ON CONFLICT(id) DO UPDATE SET category = excluded.category, answer = excluded.answer, explanation = excluded.explanation, position = excluded.position")
			if err := execBuilt(ctx, tx, upsert); err != nil {
				log.Error("failed to upsert card %s: %v", c.ID, err)
				return err
			}
			if err := execBuilt(ctx, tx, sqlBuilder.Delete("card_hints").Where(squirrel.Eq{"card_id": c.ID})); err != nil {
				return err
			}
			hints := sqlBuilder.Insert("card_hints").Columns("card_id", "level", "text", "points")
			for lvl, h := range c.Hints {
				hints = hints.Values(c.ID, lvl+1, h.Text, h.Points)
			}
			if err := execBuilt(ctx, tx, hints); err != nil {
				log.Error("failed to insert hints for card %s: %v", c.ID, err)
				return err
			}
		}
		return nil
	})
}
