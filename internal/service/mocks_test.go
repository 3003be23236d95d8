package service_test

import (
	"context"
	"time"

	"corkboard.app/api/internal/model"
	"corkboard.app/api/internal/service"
	"corkboard.app/api/internal/session"
	"corkboard.app/api/internal/store"
)

type mockUserStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*model.User, error)
	createFn        func(ctx context.Context, user *model.User) error
	searchByEmailFn func(ctx context.Context, query string, excludeID int64, limit int32) ([]model.User, error)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) SearchByEmail(ctx context.Context, query string, excludeID int64, limit int32) ([]model.User, error) {
	if m.searchByEmailFn != nil {
		return m.searchByEmailFn(ctx, query, excludeID, limit)
	}
	return nil, nil
}

type mockWorkspaceStore struct {
	getByIDFn           func(ctx context.Context, id int64) (*model.Workspace, error)
	createFn            func(ctx context.Context, ws *model.Workspace) error
	updateFn            func(ctx context.Context, ws *model.Workspace) error
	deleteFn            func(ctx context.Context, id int64) error
	listVisibleToUserFn func(ctx context.Context, userID int64) ([]model.Workspace, error)
	hasAccessFn         func(ctx context.Context, workspaceID, userID int64) (bool, error)
	addMemberFn         func(ctx context.Context, workspaceID, userID int64) (bool, error)
	listMembersFn       func(ctx context.Context, workspaceID int64) ([]model.User, error)
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockWorkspaceStore) ListVisibleToUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	if m.listVisibleToUserFn != nil {
		return m.listVisibleToUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockWorkspaceStore) HasAccess(ctx context.Context, workspaceID, userID int64) (bool, error) {
	if m.hasAccessFn != nil {
		return m.hasAccessFn(ctx, workspaceID, userID)
	}
	return false, nil
}

func (m *mockWorkspaceStore) AddMember(ctx context.Context, workspaceID, userID int64) (bool, error) {
	if m.addMemberFn != nil {
		return m.addMemberFn(ctx, workspaceID, userID)
	}
	return false, nil
}

func (m *mockWorkspaceStore) ListMembers(ctx context.Context, workspaceID int64) ([]model.User, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, workspaceID)
	}
	return nil, nil
}

type mockBoardStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*model.Board, error)
	createFn          func(ctx context.Context, board *model.Board) error
	deleteFn          func(ctx context.Context, id int64) error
	listByWorkspaceFn func(ctx context.Context, workspaceID int64) ([]model.Board, error)
}

func (m *mockBoardStore) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBoardStore) Create(ctx context.Context, board *model.Board) error {
	if m.createFn != nil {
		return m.createFn(ctx, board)
	}
	return nil
}

func (m *mockBoardStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockBoardStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Board, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

type mockListStore struct {
	getByIDFn     func(ctx context.Context, id int64) (*model.List, error)
	createFn      func(ctx context.Context, list *model.List) error
	updateFn      func(ctx context.Context, list *model.List) error
	deleteFn      func(ctx context.Context, id int64) error
	listByBoardFn func(ctx context.Context, boardID int64) ([]model.List, error)
}

func (m *mockListStore) GetByID(ctx context.Context, id int64) (*model.List, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockListStore) Create(ctx context.Context, list *model.List) error {
	if m.createFn != nil {
		return m.createFn(ctx, list)
	}
	return nil
}

func (m *mockListStore) Update(ctx context.Context, list *model.List) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, list)
	}
	return nil
}

func (m *mockListStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockListStore) ListByBoard(ctx context.Context, boardID int64) ([]model.List, error) {
	if m.listByBoardFn != nil {
		return m.listByBoardFn(ctx, boardID)
	}
	return nil, nil
}

type mockCardStore struct {
	getByIDFn    func(ctx context.Context, id int64) (*model.Card, error)
	createFn     func(ctx context.Context, card *model.Card) error
	updateFn     func(ctx context.Context, card *model.Card) error
	deleteFn     func(ctx context.Context, id int64) error
	listByListFn func(ctx context.Context, listID int64) ([]model.Card, error)
}

func (m *mockCardStore) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCardStore) Create(ctx context.Context, card *model.Card) error {
	if m.createFn != nil {
		return m.createFn(ctx, card)
	}
	return nil
}

func (m *mockCardStore) Update(ctx context.Context, card *model.Card) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, card)
	}
	return nil
}

func (m *mockCardStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCardStore) ListByList(ctx context.Context, listID int64) ([]model.Card, error) {
	if m.listByListFn != nil {
		return m.listByListFn(ctx, listID)
	}
	return nil, nil
}

// mockStores satisfies service.StoreProvider with one mock per store.
type mockStores struct {
	users      *mockUserStore
	workspaces *mockWorkspaceStore
	boards     *mockBoardStore
	lists      *mockListStore
	cards      *mockCardStore
}

func newMockStores() *mockStores {
	return &mockStores{
		users:      &mockUserStore{},
		workspaces: &mockWorkspaceStore{},
		boards:     &mockBoardStore{},
		lists:      &mockListStore{},
		cards:      &mockCardStore{},
	}
}

func (m *mockStores) Users() store.UserStore           { return m.users }
func (m *mockStores) Workspaces() store.WorkspaceStore { return m.workspaces }
func (m *mockStores) Boards() store.BoardStore         { return m.boards }
func (m *mockStores) Lists() store.ListStore           { return m.lists }
func (m *mockStores) Cards() store.CardStore           { return m.cards }

// mockTxRunner hands the provided stores straight to the callback. The
// committed flag lets tests assert broadcast-after-commit ordering.
type mockTxRunner struct {
	stores    *mockStores
	committed bool
}

func (m *mockTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	err := fn(m.stores)
	if err == nil {
		m.committed = true
	}
	return err
}

type publishedEvent struct {
	workspaceID   int64
	msg           []byte
	afterTxCommit bool
}

// mockPublisher records events and whether the transaction had already
// committed when each one was published.
type mockPublisher struct {
	tx     *mockTxRunner
	events []publishedEvent
}

func (m *mockPublisher) Publish(_ context.Context, workspaceID int64, msg []byte) {
	committed := m.tx == nil || m.tx.committed
	m.events = append(m.events, publishedEvent{
		workspaceID:   workspaceID,
		msg:           msg,
		afterTxCommit: committed,
	})
}

type mockSessionStore struct {
	saveFn   func(ctx context.Context, tokenHash string, userID int64, email string, expiresAt time.Time) error
	lookupFn func(ctx context.Context, tokenHash string) (session.TokenData, error)
	revokeFn func(ctx context.Context, tokenHash string) error
}

func (m *mockSessionStore) Save(ctx context.Context, tokenHash string, userID int64, email string, expiresAt time.Time) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, tokenHash, userID, email, expiresAt)
	}
	return nil
}

func (m *mockSessionStore) Lookup(ctx context.Context, tokenHash string) (session.TokenData, error) {
	if m.lookupFn != nil {
		return m.lookupFn(ctx, tokenHash)
	}
	return session.TokenData{}, nil
}

func (m *mockSessionStore) Revoke(ctx context.Context, tokenHash string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, tokenHash)
	}
	return nil
}
