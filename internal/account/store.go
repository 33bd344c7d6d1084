package account

import (
	"errors"
	"sync"
)

// ErrInsufficientFunds occurs when a debit exceeds the available balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Store holds the process-wide account record. All balance mutation goes
// through Credit/Debit under a single mutex so concurrent callers behave
// as if serialized; no intermediate balance is ever observable.
type Store struct {
	mu   sync.Mutex
	acct Account
}

// NewStore builds a store seeded with the given account.
func NewStore(acct Account) *Store {
	return &Store{acct: acct}
}

// Snapshot returns a value copy of the current account record.
func (s *Store) Snapshot() Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acct
}

// Credit adds cents to the balance and returns the new balance.
func (s *Store) Credit(cents int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acct.BalanceInCents += cents
	return s.acct.BalanceInCents
}

// Debit subtracts cents from the balance and returns the new balance.
// The balance is left untouched when it would go negative.
func (s *Store) Debit(cents int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cents > s.acct.BalanceInCents {
		return s.acct.BalanceInCents, ErrInsufficientFunds
	}
	s.acct.BalanceInCents -= cents
	return s.acct.BalanceInCents, nil
}
