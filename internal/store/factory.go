package store

import (
	"corkboard.app/api/core/db"
)

type Stores struct {
	q db.Querier
}

func NewStores(q db.Querier) *Stores {
	return &Stores{q: q}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.q)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.q)
}

func (s *Stores) Boards() BoardStore {
	return newBoardStore(s.q)
}

func (s *Stores) Lists() ListStore {
	return newListStore(s.q)
}

func (s *Stores) Cards() CardStore {
	return newCardStore(s.q)
}
