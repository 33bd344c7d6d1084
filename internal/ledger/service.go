package ledger

import (
	"context"
	"errors"

	"github.com/star-atm/star_atm/internal/account"
	"github.com/star-atm/star_atm/internal/session"
)

// Service performs balance mutations for the session-holding caller.
// Every failure is side effect free: balance and session table are left
// exactly as they were.
type Service struct {
	store    *account.Store
	sessions session.Registry
}

// NewService builds a ledger service instance.
func NewService(store *account.Store, sessions session.Registry) *Service {
	return &Service{store: store, sessions: sessions}
}

// Receipt is the outcome of a successful deposit or withdrawal.
type Receipt struct {
	View account.PublicView
	// DeltaInCents is the exact credited or debited amount.
	DeltaInCents int64
}

// View resolves the token and projects the account for read-only
// queries (balance, session restore).
func (s *Service) View(ctx context.Context, token string) (account.PublicView, error) {
	acct, err := s.resolve(ctx, token)
	if err != nil {
		return account.PublicView{}, err
	}
	return account.Project(acct), nil
}

// Deposit credits the normalized amount to the account.
func (s *Service) Deposit(ctx context.Context, token string, amount float64) (Receipt, error) {
	acct, err := s.resolve(ctx, token)
	if err != nil {
		return Receipt{}, err
	}

	cents, err := NormalizeAmount(amount)
	if err != nil {
		return Receipt{}, err
	}

	// Only the balance mutates after creation, so projecting the
	// snapshot with the balance Credit returned is exact even under
	// concurrent calls.
	acct.BalanceInCents = s.store.Credit(cents)
	return Receipt{View: account.Project(acct), DeltaInCents: cents}, nil
}

// Withdraw debits the normalized amount, refusing to let the balance go
// negative.
func (s *Service) Withdraw(ctx context.Context, token string, amount float64) (Receipt, error) {
	acct, err := s.resolve(ctx, token)
	if err != nil {
		return Receipt{}, err
	}

	cents, err := NormalizeAmount(amount)
	if err != nil {
		return Receipt{}, err
	}

	balance, err := s.store.Debit(cents)
	if err != nil {
		return Receipt{}, err
	}
	acct.BalanceInCents = balance
	return Receipt{View: account.Project(acct), DeltaInCents: cents}, nil
}

// resolve maps a token to the stored account, folding every session
// failure into ErrUnauthenticated so callers learn nothing about why.
func (s *Service) resolve(ctx context.Context, token string) (account.Account, error) {
	if token == "" {
		return account.Account{}, ErrUnauthenticated
	}

	accountID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrUnknownToken) {
			return account.Account{}, ErrUnauthenticated
		}
		return account.Account{}, err
	}

	acct := s.store.Snapshot()
	if accountID != acct.ID {
		return account.Account{}, ErrUnauthenticated
	}
	return acct, nil
}
