package service

import (
	"corkboard.app/api/core/config"
	"corkboard.app/api/internal/store"
)

type Services struct {
	stores       *store.Stores
	txRunner     TxRunner
	sessionStore SessionStore
	pub          Publisher
	authCfg      config.AuthConfig
}

func NewServices(stores *store.Stores, txRunner TxRunner, sessionStore SessionStore, pub Publisher, authCfg config.AuthConfig) *Services {
	return &Services{
		stores:       stores,
		txRunner:     txRunner,
		sessionStore: sessionStore,
		pub:          pub,
		authCfg:      authCfg,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.sessionStore, s.authCfg)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users())
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores, s.txRunner, s.pub)
}

func (s *Services) Boards() BoardService {
	return NewBoardService(s.stores, s.txRunner, s.pub)
}

func (s *Services) Lists() ListService {
	return NewListService(s.stores, s.txRunner, s.pub)
}

func (s *Services) Cards() CardService {
	return NewCardService(s.stores, s.txRunner, s.pub)
}
