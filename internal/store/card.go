package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"corkboard.app/api/core/db"
	"corkboard.app/api/internal/model"
)

type cardStore struct {
	q db.Querier
}

func newCardStore(q db.Querier) CardStore {
	return &cardStore{q: q}
}

func (s *cardStore) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	row := s.q.QueryRow(ctx, `SELECT id, name, description, position, list_id FROM cards WHERE id = $1`, id)
	return scanCard(row)
}

func (s *cardStore) Create(ctx context.Context, card *model.Card) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO cards (id, name, description, position, list_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, position, list_id`,
		card.ID, card.Name, card.Description, card.Position, card.ListID,
	)
	created, err := scanCard(row)
	if err != nil {
		return err
	}
	*card = *created
	return nil
}

func (s *cardStore) Update(ctx context.Context, card *model.Card) error {
	row := s.q.QueryRow(ctx, `
		UPDATE cards SET name = $2, description = $3, position = $4, list_id = $5
		WHERE id = $1
		RETURNING id, name, description, position, list_id`,
		card.ID, card.Name, card.Description, card.Position, card.ListID,
	)
	updated, err := scanCard(row)
	if err != nil {
		return err
	}
	*card = *updated
	return nil
}

func (s *cardStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *cardStore) ListByList(ctx context.Context, listID int64) ([]model.Card, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, name, description, position, list_id FROM cards
		WHERE list_id = $1
		ORDER BY position, id`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	result := []model.Card{}
	for rows.Next() {
		var c model.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Position, &c.ListID); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func scanCard(row pgx.Row) (*model.Card, error) {
	var c model.Card
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Position, &c.ListID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
