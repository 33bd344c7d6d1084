package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Address() != ":8080" {
		t.Fatalf("unexpected port config %q / %q", cfg.Port, cfg.Address())
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("expected session ttl 1h, got %s", cfg.SessionTTL)
	}
	if cfg.AccountName != "Peter Parker" || cfg.BalanceInCents != 127_540 {
		t.Fatalf("unexpected seed account %+v", cfg)
	}
	if cfg.IsProduction() {
		t.Fatal("default env must not be production")
	}
}

func TestLoadSessionTTLOverrides(t *testing.T) {
	t.Setenv("SESSION_TTL_SECONDS", "90")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SessionTTL != 90*time.Second {
		t.Fatalf("expected 90s ttl, got %s", cfg.SessionTTL)
	}

	t.Setenv("SESSION_TTL_SECONDS", "")
	t.Setenv("SESSION_TTL", "30m")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %s", cfg.SessionTTL)
	}
}

func TestLoadRejectsBadSeedAccount(t *testing.T) {
	t.Setenv("ACCOUNT_CARD_TYPE", "amex")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown card type")
	}
	t.Setenv("ACCOUNT_CARD_TYPE", "star")

	t.Setenv("ACCOUNT_OPENING_BALANCE_CENTS", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative opening balance")
	}
	t.Setenv("ACCOUNT_OPENING_BALANCE_CENTS", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable balance")
	}
}
