package auth

import (
	"context"
	"testing"
	"time"

	"github.com/star-atm/star_atm/internal/account"
	"github.com/star-atm/star_atm/internal/session"
)

func setupService(t *testing.T) (*Service, session.Registry) {
	t.Helper()

	hash, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("hash pin: %v", err)
	}

	store := account.NewStore(account.Account{
		ID:             "acc_1001",
		Name:           "Peter Parker",
		PINHash:        hash,
		CardType:       account.CardTypeStar,
		Currency:       "CAD",
		BalanceInCents: 127_540,
	})
	sessions := session.NewMemoryRegistry(time.Hour)

	return NewService(store, sessions), sessions
}

func TestAuthenticateSuccess(t *testing.T) {
	svc, sessions := setupService(t)
	ctx := context.Background()

	grant, err := svc.Authenticate(ctx, "1234")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if grant.Token == "" {
		t.Fatal("expected a session token")
	}
	if grant.View.UserName != "Peter Parker" || grant.View.Balance != 1275.40 {
		t.Fatalf("unexpected view %+v", grant.View)
	}

	accountID, err := sessions.Resolve(ctx, grant.Token)
	if err != nil {
		t.Fatalf("resolve issued token: %v", err)
	}
	if accountID != "acc_1001" {
		t.Fatalf("token resolves to %s", accountID)
	}
}

func TestAuthenticateWrongPIN(t *testing.T) {
	svc, sessions := setupService(t)
	ctx := context.Background()

	for _, pin := range []string{"", "0000", "12345", "123"} {
		grant, err := svc.Authenticate(ctx, pin)
		if err != ErrInvalidCredential {
			t.Fatalf("pin %q: expected ErrInvalidCredential, got %v", pin, err)
		}
		if grant.Token != "" {
			t.Fatalf("pin %q: token issued on failure", pin)
		}
	}

	// No session may exist after failed attempts.
	if _, err := sessions.Resolve(ctx, "any"); err != session.ErrUnknownToken {
		t.Fatalf("expected empty registry, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, sessions := setupService(t)
	ctx := context.Background()

	grant, err := svc.Authenticate(ctx, "1234")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if err := svc.Logout(ctx, grant.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := sessions.Resolve(ctx, grant.Token); err != session.ErrUnknownToken {
		t.Fatalf("token still resolves after logout: %v", err)
	}

	// Logout never fails, valid token or not.
	if err := svc.Logout(ctx, grant.Token); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
	if err := svc.Logout(ctx, ""); err != nil {
		t.Fatalf("logout without token: %v", err)
	}
}
