package session

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryRegistryIssueResolveRevoke(t *testing.T) {
	reg := NewMemoryRegistry(time.Hour)
	ctx := context.Background()

	token, err := reg.Issue(ctx, "acc_1001")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	accountID, err := reg.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if accountID != "acc_1001" {
		t.Fatalf("expected acc_1001, got %s", accountID)
	}

	if err := reg.Revoke(ctx, token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := reg.Resolve(ctx, token); err != ErrUnknownToken {
		t.Fatalf("expected unknown token after revoke, got %v", err)
	}
}

func TestMemoryRegistryRevokeAbsentToken(t *testing.T) {
	reg := NewMemoryRegistry(time.Hour)
	if err := reg.Revoke(context.Background(), "never-issued"); err != nil {
		t.Fatalf("revoking absent token should be a no-op, got %v", err)
	}
}

func TestMemoryRegistryTokensAreUnique(t *testing.T) {
	reg := NewMemoryRegistry(time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := reg.Issue(ctx, "acc_1001")
		if err != nil {
			t.Fatalf("issue %d: %v", i, err)
		}
		if seen[token] {
			t.Fatalf("token %s issued twice", token)
		}
		seen[token] = true
	}
}

func TestMemoryRegistryLazyExpiry(t *testing.T) {
	reg := NewMemoryRegistry(time.Hour).(*memoryRegistry)
	ctx := context.Background()

	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return current }

	token, err := reg.Issue(ctx, "acc_1001")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	current = current.Add(59 * time.Minute)
	if _, err := reg.Resolve(ctx, token); err != nil {
		t.Fatalf("token expired too early: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := reg.Resolve(ctx, token); err != ErrUnknownToken {
		t.Fatalf("expected expiry, got %v", err)
	}
	if reg.count() != 0 {
		t.Fatalf("expired session not evicted, %d left", reg.count())
	}
}

func TestMemoryRegistryZeroTTLNeverExpires(t *testing.T) {
	reg := NewMemoryRegistry(0).(*memoryRegistry)
	ctx := context.Background()

	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return current }

	token, _ := reg.Issue(ctx, "acc_1001")
	current = current.Add(1000 * time.Hour)

	if _, err := reg.Resolve(ctx, token); err != nil {
		t.Fatalf("ttl 0 should disable expiry, got %v", err)
	}
}

func TestMemoryRegistryConcurrentAccess(t *testing.T) {
	reg := NewMemoryRegistry(time.Hour)
	ctx := context.Background()

	token, err := reg.Issue(ctx, "acc_1001")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Resolve(ctx, token); err != nil {
				t.Errorf("resolve: %v", err)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			other, err := reg.Issue(ctx, "acc_1001")
			if err != nil {
				t.Errorf("issue: %v", err)
				return
			}
			if err := reg.Revoke(ctx, other); err != nil {
				t.Errorf("revoke: %v", err)
			}
		}()
	}
	wg.Wait()

	if _, err := reg.Resolve(ctx, token); err != nil {
		t.Fatalf("original session lost: %v", err)
	}
}
