package service

import (
	"context"
	"fmt"
	"strings"

	"corkboard.app/api/common/id"
	"corkboard.app/api/internal/model"
)

type BoardService interface {
	ListByWorkspace(ctx context.Context, userID, workspaceID int64) ([]model.Board, error)
	Get(ctx context.Context, userID, boardID int64) (*model.Board, error)
	Create(ctx context.Context, userID, workspaceID int64, name string) (*model.Board, error)
	Delete(ctx context.Context, userID, workspaceID, boardID int64) error
}

type boardService struct {
	stores   StoreProvider
	txRunner TxRunner
	pub      Publisher
}

func NewBoardService(stores StoreProvider, txRunner TxRunner, pub Publisher) BoardService {
	return &boardService{stores: stores, txRunner: txRunner, pub: pub}
}

func (s *boardService) ListByWorkspace(ctx context.Context, userID, workspaceID int64) ([]model.Board, error) {
	resolver := accessResolver{stores: s.stores}
	if _, err := resolver.requireWorkspace(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	boards, err := s.stores.Boards().ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}
	return boards, nil
}

func (s *boardService) Get(ctx context.Context, userID, boardID int64) (*model.Board, error) {
	resolver := accessResolver{stores: s.stores}
	board, _, err := resolver.requireBoard(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (s *boardService) Create(ctx context.Context, userID, workspaceID int64, name string) (*model.Board, error) {
	var board *model.Board
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		if _, err := resolver.requireWorkspace(ctx, userID, workspaceID); err != nil {
			return err
		}

		board = &model.Board{
			ID:          id.New(),
			Name:        strings.TrimSpace(name),
			WorkspaceID: workspaceID,
		}
		if err := stores.Boards().Create(ctx, board); err != nil {
			return fmt.Errorf("creating board: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcast(ctx, s.pub, workspaceID, model.EventBoardCreated, board)

	return board, nil
}

// Delete removes the board and everything under it. Subscribers get a
// single board_deleted event; the cascaded lists and cards are implied.
// A workspaceID that is not the board's actual parent reads as absent.
func (s *boardService) Delete(ctx context.Context, userID, workspaceID, boardID int64) error {
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		board, _, err := resolver.requireBoard(ctx, userID, boardID)
		if err != nil {
			return err
		}
		if board.WorkspaceID != workspaceID {
			return ErrNotFound
		}
		if err := stores.Boards().Delete(ctx, board.ID); err != nil {
			return fmt.Errorf("deleting board: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	broadcast(ctx, s.pub, workspaceID, model.EventBoardDeleted, struct {
		ID          int64 `json:"id,string"`
		WorkspaceID int64 `json:"workspace_id,string"`
	}{boardID, workspaceID})

	return nil
}
