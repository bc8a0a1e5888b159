// Package auth models the external identity provider behind a narrow
// interface. The core never implements identity itself; it only
// consumes sign-in and current-user lookups.
package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when sign-in is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSignedOut is returned when no user is signed in.
	ErrSignedOut = errors.New("no signed-in user")
)

// User identifies an authenticated account.
type User struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"displayName,omitempty"`
}

// Provider is the identity capability consumed by clients.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*User, error)
	CurrentUser(ctx context.Context) (*User, error)
	SignOut(ctx context.Context) error
}
