package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both entities that do not exist and entities
	// the caller is not allowed to see. Handlers map it to 404 so the
	// API never reveals which of the two it was.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned for owner-only operations attempted by
	// a plain member.
	ErrForbidden = errors.New("operation requires workspace ownership")

	// ErrConflict marks uniqueness violations.
	ErrConflict = errors.New("conflict")

	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired")
)
