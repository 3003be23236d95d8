package store

import (
	"context"
	"errors"

	"corkboard.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness
// constraint, e.g. an already-registered email or username.
var ErrDuplicate = errors.New("duplicate")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	// SearchByEmail matches email case-insensitively by substring,
	// optionally excluding one user id (0 excludes nobody).
	SearchByEmail(ctx context.Context, query string, excludeID int64, limit int32) ([]model.User, error)
}

// WorkspaceStore defines the contract for workspace and membership data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	Delete(ctx context.Context, id int64) error // cascades to boards/lists/cards/memberships
	// ListVisibleToUser returns workspaces the user owns or is a member of,
	// in insertion order.
	ListVisibleToUser(ctx context.Context, userID int64) ([]model.Workspace, error)
	// HasAccess reports whether the user owns the workspace or holds a
	// membership row for it.
	HasAccess(ctx context.Context, workspaceID, userID int64) (bool, error)
	// AddMember inserts a membership row; adding an existing member is a
	// no-op and reports false.
	AddMember(ctx context.Context, workspaceID, userID int64) (bool, error)
	ListMembers(ctx context.Context, workspaceID int64) ([]model.User, error)
}

// BoardStore defines the contract for board data access
type BoardStore interface {
	GetByID(ctx context.Context, id int64) (*model.Board, error)
	Create(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id int64) error // cascades to lists/cards
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Board, error)
}

// ListStore defines the contract for list data access
type ListStore interface {
	GetByID(ctx context.Context, id int64) (*model.List, error)
	Create(ctx context.Context, list *model.List) error
	Update(ctx context.Context, list *model.List) error
	Delete(ctx context.Context, id int64) error // cascades to cards
	// ListByBoard returns lists ordered by position ascending.
	ListByBoard(ctx context.Context, boardID int64) ([]model.List, error)
}

// CardStore defines the contract for card data access
type CardStore interface {
	GetByID(ctx context.Context, id int64) (*model.Card, error)
	Create(ctx context.Context, card *model.Card) error
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, id int64) error
	// ListByList returns cards ordered by position ascending.
	ListByList(ctx context.Context, listID int64) ([]model.Card, error)
}
