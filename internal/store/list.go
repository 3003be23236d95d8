package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"corkboard.app/api/core/db"
	"corkboard.app/api/internal/model"
)

type listStore struct {
	q db.Querier
}

func newListStore(q db.Querier) ListStore {
	return &listStore{q: q}
}

func (s *listStore) GetByID(ctx context.Context, id int64) (*model.List, error) {
	row := s.q.QueryRow(ctx, `SELECT id, name, position, board_id FROM lists WHERE id = $1`, id)
	return scanList(row)
}

func (s *listStore) Create(ctx context.Context, list *model.List) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO lists (id, name, position, board_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, position, board_id`,
		list.ID, list.Name, list.Position, list.BoardID,
	)
	created, err := scanList(row)
	if err != nil {
		return err
	}
	*list = *created
	return nil
}

func (s *listStore) Update(ctx context.Context, list *model.List) error {
	row := s.q.QueryRow(ctx, `
		UPDATE lists SET name = $2, position = $3
		WHERE id = $1
		RETURNING id, name, position, board_id`,
		list.ID, list.Name, list.Position,
	)
	updated, err := scanList(row)
	if err != nil {
		return err
	}
	*list = *updated
	return nil
}

func (s *listStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM lists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *listStore) ListByBoard(ctx context.Context, boardID int64) ([]model.List, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, name, position, board_id FROM lists
		WHERE board_id = $1
		ORDER BY position, id`,
		boardID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}
	defer rows.Close()

	result := []model.List{}
	for rows.Next() {
		var l model.List
		if err := rows.Scan(&l.ID, &l.Name, &l.Position, &l.BoardID); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func scanList(row pgx.Row) (*model.List, error) {
	var l model.List
	err := row.Scan(&l.ID, &l.Name, &l.Position, &l.BoardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}
