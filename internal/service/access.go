package service

import (
	"context"
	"errors"
	"fmt"

	"corkboard.app/api/internal/model"
	"corkboard.app/api/internal/store"
)

// accessResolver walks the ownership chain (card -> list -> board ->
// workspace) and checks whether a user may touch the entity. Any
// missing link or denied access resolves to ErrNotFound so callers
// cannot probe which IDs exist.
type accessResolver struct {
	stores StoreProvider
}

func (r accessResolver) requireWorkspace(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	ws, err := r.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	ok, err := r.stores.Workspaces().HasAccess(ctx, workspaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("checking workspace access: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return ws, nil
}

// requireOwnedWorkspace is requireWorkspace plus an ownership check.
// A member who is not the owner gets ErrForbidden, since membership
// already proved the workspace exists for them.
func (r accessResolver) requireOwnedWorkspace(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	ws, err := r.requireWorkspace(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws.OwnerID != userID {
		return nil, ErrForbidden
	}
	return ws, nil
}

func (r accessResolver) requireBoard(ctx context.Context, userID, boardID int64) (*model.Board, *model.Workspace, error) {
	board, err := r.stores.Boards().GetByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("getting board: %w", err)
	}

	ws, err := r.requireWorkspace(ctx, userID, board.WorkspaceID)
	if err != nil {
		return nil, nil, err
	}
	return board, ws, nil
}

func (r accessResolver) requireList(ctx context.Context, userID, listID int64) (*model.List, *model.Workspace, error) {
	list, err := r.stores.Lists().GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("getting list: %w", err)
	}

	_, ws, err := r.requireBoard(ctx, userID, list.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return list, ws, nil
}

func (r accessResolver) requireCard(ctx context.Context, userID, cardID int64) (*model.Card, *model.Workspace, error) {
	card, err := r.stores.Cards().GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("getting card: %w", err)
	}

	_, ws, err := r.requireList(ctx, userID, card.ListID)
	if err != nil {
		return nil, nil, err
	}
	return card, ws, nil
}
