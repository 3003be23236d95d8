package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"corkboard.app/api/core/db"
	"corkboard.app/api/internal/model"
)

type workspaceStore struct {
	q db.Querier
}

func newWorkspaceStore(q db.Querier) WorkspaceStore {
	return &workspaceStore{q: q}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row := s.q.QueryRow(ctx, `SELECT id, name, owner_id FROM workspaces WHERE id = $1`, id)
	return scanWorkspace(row)
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO workspaces (id, name, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, owner_id`,
		ws.ID, ws.Name, ws.OwnerID,
	)
	created, err := scanWorkspace(row)
	if err != nil {
		return err
	}
	*ws = *created
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	row := s.q.QueryRow(ctx, `
		UPDATE workspaces SET name = $2 WHERE id = $1
		RETURNING id, name, owner_id`,
		ws.ID, ws.Name,
	)
	updated, err := scanWorkspace(row)
	if err != nil {
		return err
	}
	*ws = *updated
	return nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *workspaceStore) ListVisibleToUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, name, owner_id
		FROM workspaces
		WHERE owner_id = $1
		   OR id IN (SELECT workspace_id FROM workspace_members WHERE user_id = $1)
		ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	defer rows.Close()

	result := []model.Workspace{}
	for rows.Next() {
		var ws model.Workspace
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.OwnerID); err != nil {
			return nil, err
		}
		result = append(result, ws)
	}
	return result, rows.Err()
}

func (s *workspaceStore) HasAccess(ctx context.Context, workspaceID, userID int64) (bool, error) {
	var ok bool
	err := s.q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM workspaces w
			WHERE w.id = $1
			  AND (w.owner_id = $2
			       OR EXISTS(SELECT 1 FROM workspace_members m WHERE m.workspace_id = w.id AND m.user_id = $2))
		)`,
		workspaceID, userID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("checking workspace access: %w", err)
	}
	return ok, nil
}

func (s *workspaceStore) AddMember(ctx context.Context, workspaceID, userID int64) (bool, error) {
	tag, err := s.q.Exec(ctx, `
		INSERT INTO workspace_members (workspace_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (workspace_id, user_id) DO NOTHING`,
		workspaceID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("adding member: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *workspaceStore) ListMembers(ctx context.Context, workspaceID int64) ([]model.User, error) {
	rows, err := s.q.Query(ctx, `
		SELECT u.`+"id, u.username, u.email, u.password_hash, u.is_active, u.created_at"+`
		FROM users u
		JOIN workspace_members m ON m.user_id = u.id
		WHERE m.workspace_id = $1
		ORDER BY u.id`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

func scanWorkspace(row pgx.Row) (*model.Workspace, error) {
	var ws model.Workspace
	err := row.Scan(&ws.ID, &ws.Name, &ws.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ws, nil
}
