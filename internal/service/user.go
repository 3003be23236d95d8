package service

import (
	"context"
	"fmt"
	"strings"

	"corkboard.app/api/internal/model"
	"corkboard.app/api/internal/store"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type UserService interface {
	// SearchByEmail finds users whose email contains the query, excluding
	// the caller. An empty query returns no results.
	SearchByEmail(ctx context.Context, callerID int64, query string, limit int) ([]model.User, error)
}

type userService struct {
	userStore store.UserStore
}

func NewUserService(userStore store.UserStore) UserService {
	return &userService{userStore: userStore}
}

func (s *userService) SearchByEmail(ctx context.Context, callerID int64, query string, limit int) ([]model.User, error) {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return []model.User{}, nil
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	users, err := s.userStore.SearchByEmail(ctx, query, callerID, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}
	return users, nil
}
