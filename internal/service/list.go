package service

import (
	"context"
	"fmt"
	"strings"

	"corkboard.app/api/common/id"
	"corkboard.app/api/internal/model"
)

// ListUpdate carries the optional fields of a list update. Nil fields
// keep their current value.
type ListUpdate struct {
	Name     *string
	Position *int
}

type ListService interface {
	ListByBoard(ctx context.Context, userID, boardID int64) ([]model.List, error)
	Get(ctx context.Context, userID, listID int64) (*model.List, error)
	Create(ctx context.Context, userID, boardID int64, name string, position int) (*model.List, error)
	Update(ctx context.Context, userID, boardID, listID int64, update ListUpdate) (*model.List, error)
	Delete(ctx context.Context, userID, boardID, listID int64) error
}

type listService struct {
	stores   StoreProvider
	txRunner TxRunner
	pub      Publisher
}

func NewListService(stores StoreProvider, txRunner TxRunner, pub Publisher) ListService {
	return &listService{stores: stores, txRunner: txRunner, pub: pub}
}

func (s *listService) ListByBoard(ctx context.Context, userID, boardID int64) ([]model.List, error) {
	resolver := accessResolver{stores: s.stores}
	if _, _, err := resolver.requireBoard(ctx, userID, boardID); err != nil {
		return nil, err
	}

	lists, err := s.stores.Lists().ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}
	return lists, nil
}

func (s *listService) Get(ctx context.Context, userID, listID int64) (*model.List, error) {
	resolver := accessResolver{stores: s.stores}
	list, _, err := resolver.requireList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *listService) Create(ctx context.Context, userID, boardID int64, name string, position int) (*model.List, error) {
	var (
		list        *model.List
		workspaceID int64
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		_, ws, err := resolver.requireBoard(ctx, userID, boardID)
		if err != nil {
			return err
		}

		list = &model.List{
			ID:       id.New(),
			Name:     strings.TrimSpace(name),
			Position: position,
			BoardID:  boardID,
		}
		if err := stores.Lists().Create(ctx, list); err != nil {
			return fmt.Errorf("creating list: %w", err)
		}
		workspaceID = ws.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcast(ctx, s.pub, workspaceID, model.EventListCreated, list)

	return list, nil
}

// Update applies a partial update. A boardID that is not the list's
// actual parent reads as absent.
func (s *listService) Update(ctx context.Context, userID, boardID, listID int64, update ListUpdate) (*model.List, error) {
	var (
		list        *model.List
		workspaceID int64
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		current, ws, err := resolver.requireList(ctx, userID, listID)
		if err != nil {
			return err
		}
		if current.BoardID != boardID {
			return ErrNotFound
		}

		if update.Name != nil {
			current.Name = strings.TrimSpace(*update.Name)
		}
		if update.Position != nil {
			current.Position = *update.Position
		}

		if err := stores.Lists().Update(ctx, current); err != nil {
			return fmt.Errorf("updating list: %w", err)
		}
		list = current
		workspaceID = ws.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcast(ctx, s.pub, workspaceID, model.EventListUpdated, list)

	return list, nil
}

// Delete removes the list and its cards. A single list_deleted event is
// broadcast; the cascaded cards are implied.
func (s *listService) Delete(ctx context.Context, userID, boardID, listID int64) error {
	var workspaceID int64
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		list, ws, err := resolver.requireList(ctx, userID, listID)
		if err != nil {
			return err
		}
		if list.BoardID != boardID {
			return ErrNotFound
		}
		if err := stores.Lists().Delete(ctx, list.ID); err != nil {
			return fmt.Errorf("deleting list: %w", err)
		}
		workspaceID = ws.ID
		return nil
	})
	if err != nil {
		return err
	}

	broadcast(ctx, s.pub, workspaceID, model.EventListDeleted, struct {
		ID      int64 `json:"id,string"`
		BoardID int64 `json:"board_id,string"`
	}{listID, boardID})

	return nil
}
