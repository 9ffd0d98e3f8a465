package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// Gift errors
var (
	// ErrGiftNotFound covers both a missing gift and a gift owned by
	// another user. The two cases are never distinguished to callers.
	ErrGiftNotFound = errors.New("gift not found")
)
