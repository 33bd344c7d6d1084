package ledger

import "errors"

var (
	// ErrUnauthenticated occurs when a token is missing, unknown,
	// revoked or expired.
	ErrUnauthenticated = errors.New("no active session")

	// ErrInvalidAmount occurs when an amount is non-finite, not
	// positive, or rounds to zero minor units.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)
