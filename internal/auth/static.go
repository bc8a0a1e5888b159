package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
)

// StaticProvider is a Provider for local development and tests: any
// non-empty email/password pair signs in, and the user id is derived
// deterministically from the email so repeated sessions see the same
// entries.
type StaticProvider struct {
	mu      sync.Mutex
	current *User
}

func NewStaticProvider() *StaticProvider { return &StaticProvider{} }

func (p *StaticProvider) SignIn(ctx context.Context, email, password string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	sum := sha256.Sum256([]byte(email))
	u := &User{ID: "u_" + hex.EncodeToString(sum[:8]), Email: email}

	p.mu.Lock()
	p.current = u
	p.mu.Unlock()
	return u, nil
}

func (p *StaticProvider) CurrentUser(ctx context.Context) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil, ErrSignedOut
	}
	u := *p.current
	return &u, nil
}

func (p *StaticProvider) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()
	return nil
}
