package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"corkboard.app/api/common/id"
	"corkboard.app/api/core/config"
	"corkboard.app/api/internal/auth"
	"corkboard.app/api/internal/model"
	"corkboard.app/api/internal/session"
	"corkboard.app/api/internal/store"
)

// SessionStore persists refresh tokens keyed by their hash.
// Satisfied by *session.RedisStore.
type SessionStore interface {
	Save(ctx context.Context, tokenHash string, userID int64, email string, expiresAt time.Time) error
	Lookup(ctx context.Context, tokenHash string) (session.TokenData, error)
	Revoke(ctx context.Context, tokenHash string) error
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime in seconds
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

type authService struct {
	userStore    store.UserStore
	sessionStore SessionStore
	cfg          config.AuthConfig
}

func NewAuthService(userStore store.UserStore, sessionStore SessionStore, cfg config.AuthConfig) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		cfg:          cfg,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	email = normalizeEmail(email)

	if _, err := s.userStore.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking email availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           id.New(),
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email or username already registered", ErrConflict)
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.InfoContext(ctx, "user registered",
		"user_id", user.ID,
		"email", user.Email,
	)

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error) {
	user, err := s.userStore.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("getting user: %w", err)
	}

	if !user.IsActive {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID)

	return user, pair, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	tokenHash := auth.HashToken(refreshToken)

	data, err := s.sessionStore.Lookup(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("looking up refresh session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, data.UserID)
	if err != nil || !user.IsActive {
		return nil, ErrSessionExpired
	}

	// Rotation: the presented token is spent either way.
	if err := s.sessionStore.Revoke(ctx, tokenHash); err != nil {
		return nil, fmt.Errorf("revoking refresh session: %w", err)
	}

	return s.issuePair(ctx, user.ID, user.Email)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.sessionStore.Revoke(ctx, auth.HashToken(refreshToken)); err != nil {
		return fmt.Errorf("revoking refresh session: %w", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := auth.ParseToken([]byte(s.cfg.TokenSecret), accessToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userStore.GetByEmail(ctx, claims.Sub)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) issuePair(ctx context.Context, userID int64, email string) (*TokenPair, error) {
	now := time.Now()
	accessToken, err := auth.IssueToken([]byte(s.cfg.TokenSecret), auth.Claims{
		Sub: email,
		JTI: fmt.Sprintf("%d", id.New()),
		Exp: now.Add(s.cfg.AccessTokenTTL).Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("issuing access token: %w", err)
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(s.cfg.RefreshTTL)
	if err := s.sessionStore.Save(ctx, auth.HashToken(refreshToken), userID, email, expiresAt); err != nil {
		return nil, fmt.Errorf("saving refresh session: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
