package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"corkboard.app/api/common/id"
	"corkboard.app/api/internal/model"
	"corkboard.app/api/internal/store"
)

type WorkspaceService interface {
	List(ctx context.Context, userID int64) ([]model.Workspace, error)
	Get(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error)
	Create(ctx context.Context, userID int64, name string) (*model.Workspace, error)
	Update(ctx context.Context, userID, workspaceID int64, name string) (*model.Workspace, error)
	Delete(ctx context.Context, userID, workspaceID int64) error
	AddMember(ctx context.Context, userID, workspaceID, memberID int64) (*model.Workspace, error)
	Members(ctx context.Context, userID, workspaceID int64) ([]model.User, error)
}

type workspaceService struct {
	stores   StoreProvider
	txRunner TxRunner
	pub      Publisher
}

func NewWorkspaceService(stores StoreProvider, txRunner TxRunner, pub Publisher) WorkspaceService {
	return &workspaceService{stores: stores, txRunner: txRunner, pub: pub}
}

func (s *workspaceService) List(ctx context.Context, userID int64) ([]model.Workspace, error) {
	workspaces, err := s.stores.Workspaces().ListVisibleToUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return workspaces, nil
}

func (s *workspaceService) Get(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	resolver := accessResolver{stores: s.stores}
	ws, err := resolver.requireWorkspace(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	members, err := s.stores.Workspaces().ListMembers(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	ws.Members = members

	return ws, nil
}

func (s *workspaceService) Create(ctx context.Context, userID int64, name string) (*model.Workspace, error) {
	ws := &model.Workspace{
		ID:      id.New(),
		Name:    strings.TrimSpace(name),
		OwnerID: userID,
	}

	if err := s.stores.Workspaces().Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace created",
		"workspace_id", ws.ID,
		"owner_id", userID,
	)

	broadcast(ctx, s.pub, ws.ID, model.EventWorkspaceCreated, ws)

	return ws, nil
}

func (s *workspaceService) Update(ctx context.Context, userID, workspaceID int64, name string) (*model.Workspace, error) {
	var ws *model.Workspace
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		current, err := resolver.requireOwnedWorkspace(ctx, userID, workspaceID)
		if err != nil {
			return err
		}

		current.Name = strings.TrimSpace(name)
		if err := stores.Workspaces().Update(ctx, current); err != nil {
			return fmt.Errorf("updating workspace: %w", err)
		}
		ws = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcast(ctx, s.pub, ws.ID, model.EventWorkspaceUpdated, ws)

	return ws, nil
}

func (s *workspaceService) Delete(ctx context.Context, userID, workspaceID int64) error {
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		if _, err := resolver.requireOwnedWorkspace(ctx, userID, workspaceID); err != nil {
			return err
		}
		if err := stores.Workspaces().Delete(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "workspace deleted",
		"workspace_id", workspaceID,
		"owner_id", userID,
	)

	broadcast(ctx, s.pub, workspaceID, model.EventWorkspaceDeleted, struct {
		ID int64 `json:"id,string"`
	}{workspaceID})

	return nil
}

// AddMember is idempotent: adding a user who already belongs to the
// workspace succeeds without a duplicate row or a second event.
func (s *workspaceService) AddMember(ctx context.Context, userID, workspaceID, memberID int64) (*model.Workspace, error) {
	var (
		ws     *model.Workspace
		member *model.User
		added  bool
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		current, err := resolver.requireOwnedWorkspace(ctx, userID, workspaceID)
		if err != nil {
			return err
		}

		user, err := stores.Users().GetByID(ctx, memberID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("getting user: %w", err)
		}

		inserted, err := stores.Workspaces().AddMember(ctx, workspaceID, memberID)
		if err != nil {
			return fmt.Errorf("adding member: %w", err)
		}

		members, err := stores.Workspaces().ListMembers(ctx, workspaceID)
		if err != nil {
			return fmt.Errorf("listing members: %w", err)
		}
		current.Members = members

		ws = current
		member = user
		added = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	if added {
		slog.InfoContext(ctx, "member added",
			"workspace_id", workspaceID,
			"member_id", member.ID,
		)
		broadcast(ctx, s.pub, workspaceID, model.EventMemberAdded, struct {
			WorkspaceID int64      `json:"workspace_id,string"`
			User        model.User `json:"user"`
		}{workspaceID, *member})
	}

	return ws, nil
}

func (s *workspaceService) Members(ctx context.Context, userID, workspaceID int64) ([]model.User, error) {
	resolver := accessResolver{stores: s.stores}
	if _, err := resolver.requireWorkspace(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	members, err := s.stores.Workspaces().ListMembers(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	return members, nil
}
