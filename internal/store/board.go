package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"corkboard.app/api/core/db"
	"corkboard.app/api/internal/model"
)

type boardStore struct {
	q db.Querier
}

func newBoardStore(q db.Querier) BoardStore {
	return &boardStore{q: q}
}

func (s *boardStore) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	row := s.q.QueryRow(ctx, `SELECT id, name, workspace_id FROM boards WHERE id = $1`, id)
	return scanBoard(row)
}

func (s *boardStore) Create(ctx context.Context, board *model.Board) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO boards (id, name, workspace_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, workspace_id`,
		board.ID, board.Name, board.WorkspaceID,
	)
	created, err := scanBoard(row)
	if err != nil {
		return err
	}
	*board = *created
	return nil
}

func (s *boardStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *boardStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Board, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, name, workspace_id FROM boards
		WHERE workspace_id = $1
		ORDER BY id`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}
	defer rows.Close()

	result := []model.Board{}
	for rows.Next() {
		var b model.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.WorkspaceID); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func scanBoard(row pgx.Row) (*model.Board, error) {
	var b model.Board
	err := row.Scan(&b.ID, &b.Name, &b.WorkspaceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
