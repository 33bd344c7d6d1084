package session

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownToken occurs when a token does not map to a live session,
// either because it was never issued, was revoked, or has expired.
var ErrUnknownToken = errors.New("unknown session token")

// Record is a live session entry. Tokens are opaque handles; the record
// carries no information a caller could decode from the token itself.
type Record struct {
	AccountID string    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Registry is the authoritative token-to-account lookup table. It owns
// session expiry: a resolved token is guaranteed to be within its TTL.
type Registry interface {
	// Issue mints a fresh unguessable token for the account and stores
	// the record. Registration is atomic; a token is never observable
	// half-issued.
	Issue(ctx context.Context, accountID string) (string, error)

	// Resolve returns the owning account for a live token, or
	// ErrUnknownToken. Safe to call concurrently with Issue and Revoke.
	Resolve(ctx context.Context, token string) (string, error)

	// Revoke removes the session. Revoking an absent token is a no-op.
	Revoke(ctx context.Context, token string) error
}
