package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/star-atm/star_atm/internal/account"
	"github.com/star-atm/star_atm/internal/session"
)

// ErrInvalidCredential is the only authentication failure ever surfaced.
// Callers cannot tell a wrong PIN from any other mismatch.
var ErrInvalidCredential = errors.New("invalid credential")

// Service authenticates the caller against the stored credential and
// manages the session lifecycle.
type Service struct {
	store    *account.Store
	sessions session.Registry
}

// NewService builds an authentication service instance.
func NewService(store *account.Store, sessions session.Registry) *Service {
	return &Service{store: store, sessions: sessions}
}

// Grant is a freshly issued session with the account view.
type Grant struct {
	Token string
	View  account.PublicView
}

// HashPIN derives the stored credential from a plaintext PIN. The
// plaintext is never kept.
func HashPIN(pin string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	return hash, nil
}

// Authenticate verifies the presented PIN and issues a session token.
// No session is created on mismatch. bcrypt keeps the comparison time
// independent of how much of the PIN matched.
func (s *Service) Authenticate(ctx context.Context, pin string) (Grant, error) {
	acct := s.store.Snapshot()

	if err := bcrypt.CompareHashAndPassword(acct.PINHash, []byte(pin)); err != nil {
		return Grant{}, ErrInvalidCredential
	}

	token, err := s.sessions.Issue(ctx, acct.ID)
	if err != nil {
		return Grant{}, fmt.Errorf("issue session: %w", err)
	}

	return Grant{Token: token, View: account.Project(acct)}, nil
}

// Logout revokes the session. It succeeds whether or not the token was
// ever valid.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token)
}
