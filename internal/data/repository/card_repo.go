package repository

import (
	"context"
	"errors"
	"fmt"

	"srent/internal/data/entity"
	"srent/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CardRepository interface {
	// Create inserts the card and its holder link in one transaction.
	Create(ctx context.Context, card *entity.Card) error
	Update(ctx context.Context, card *entity.Card) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entity.Card, error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.Card, error)
}

type cardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCardRepository(db database.PgxIface, log *zap.Logger) CardRepository {
	return &cardRepository{
		db:  db,
		log: log.With(zap.String("repository", "card")),
	}
}

func (r *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin add card transaction", zap.Error(err))
		return fmt.Errorf("begin add card: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO cards (card_brand, card_number, exp_date, name_on_card)
		VALUES ($1, $2, $3, $4)
		RETURNING card_id`,
		card.Brand, card.Number, card.ExpDate, card.NameOnCard,
	).Scan(&card.ID)
	if err != nil {
		r.log.Error("Failed to insert card", zap.Error(err), zap.Int64("user_id", card.UserID))
		return wrapDBError("insert card", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO brings (user_id, card_id) VALUES ($1, $2)`,
		card.UserID, card.ID,
	); err != nil {
		r.log.Error("Failed to link card to user",
			zap.Error(err),
			zap.Int64("card_id", card.ID),
			zap.Int64("user_id", card.UserID),
		)
		return wrapDBError("link card to user", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit add card", zap.Error(err))
		return fmt.Errorf("commit add card: %w", err)
	}

	return nil
}

func (r *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE cards
		SET card_brand = $2, card_number = $3, exp_date = $4, name_on_card = $5
		WHERE card_id = $1`,
		card.ID, card.Brand, card.Number, card.ExpDate, card.NameOnCard,
	)
	if err != nil {
		r.log.Error("Failed to update card", zap.Error(err), zap.Int64("card_id", card.ID))
		return wrapDBError(fmt.Sprintf("update card %d", card.ID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %d: %w", card.ID, ErrNotFound)
	}

	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cards WHERE card_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete card", zap.Error(err), zap.Int64("card_id", id))
		return wrapDBError(fmt.Sprintf("delete card %d", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *cardRepository) FindByID(ctx context.Context, id int64) (*entity.Card, error) {
	var card entity.Card
	err := r.db.QueryRow(ctx, `
		SELECT c.card_id, c.card_brand, c.card_number, c.exp_date, c.name_on_card, b.user_id
		FROM cards c
		JOIN brings b ON c.card_id = b.card_id
		WHERE c.card_id = $1`, id,
	).Scan(&card.ID, &card.Brand, &card.Number, &card.ExpDate, &card.NameOnCard, &card.UserID)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find card by ID", zap.Error(err), zap.Int64("card_id", id))
		return nil, fmt.Errorf("find card by ID %d: %w", id, err)
	}

	return &card, nil
}

func (r *cardRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Card, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.card_id, c.card_brand, c.card_number, c.exp_date, c.name_on_card, b.user_id
		FROM cards c
		JOIN brings b ON c.card_id = b.card_id
		WHERE b.user_id = $1
		ORDER BY c.card_id`, userID,
	)
	if err != nil {
		r.log.Error("Failed to query cards by user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("query cards for user %d: %w", userID, err)
	}
	defer rows.Close()

	var cards []*entity.Card
	for rows.Next() {
		var card entity.Card
		err := rows.Scan(&card.ID, &card.Brand, &card.Number, &card.ExpDate, &card.NameOnCard, &card.UserID)
		if err != nil {
			r.log.Error("Failed to scan card row", zap.Error(err))
			return nil, fmt.Errorf("scan card row: %w", err)
		}
		cards = append(cards, &card)
	}

	return cards, rows.Err()
}
