package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/star-atm/star_atm/internal/account"
)

const (
	defaultAppName        = "StarATM"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultShutdownDelay  = 10 * time.Second
	defaultSessionTTL     = time.Hour
	defaultIdempotencyTTL = 24 * time.Hour

	defaultAccountID      = "acc_1001"
	defaultAccountName    = "Peter Parker"
	defaultAccountPIN     = "1234"
	defaultCardType       = string(account.CardTypeStar)
	defaultCurrency       = "CAD"
	defaultBalanceInCents = int64(127_540)

	sessionTTLSecondsEnvVar = "SESSION_TTL_SECONDS"
	sessionTTLDurEnvVar     = "SESSION_TTL"
	idemTTLSecondsEnvVar    = "IDEMPOTENCY_TTL_SECONDS"
	idemTTLDurEnvVar        = "IDEMPOTENCY_TTL"
	shutdownSecondsEnvVar   = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar  = "SHUTDOWN_TIMEOUT"
	balanceEnvVar           = "ACCOUNT_OPENING_BALANCE_CENTS"
	cardTypeEnvVar          = "ACCOUNT_CARD_TYPE"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	RedisURL       string
	ShutdownPeriod time.Duration
	SessionTTL     time.Duration
	IdempotencyTTL time.Duration

	// Seed account served by this instance.
	AccountID      string
	AccountName    string
	AccountPIN     string
	CardType       account.CardType
	Currency       string
	BalanceInCents int64
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		RedisURL:       os.Getenv("REDIS_URL"),
		ShutdownPeriod: defaultShutdownDelay,
		SessionTTL:     defaultSessionTTL,
		IdempotencyTTL: defaultIdempotencyTTL,
		AccountID:      getEnv("ACCOUNT_ID", defaultAccountID),
		AccountName:    getEnv("ACCOUNT_NAME", defaultAccountName),
		AccountPIN:     getEnv("ACCOUNT_PIN", defaultAccountPIN),
		CardType:       account.CardType(strings.ToLower(getEnv(cardTypeEnvVar, defaultCardType))),
		Currency:       strings.ToUpper(getEnv("ACCOUNT_CURRENCY", defaultCurrency)),
		BalanceInCents: defaultBalanceInCents,
	}

	var err error
	if cfg.ShutdownPeriod, err = durationEnv(shutdownSecondsEnvVar, shutdownDurationEnvVar, cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationEnv(sessionTTLSecondsEnvVar, sessionTTLDurEnvVar, cfg.SessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = durationEnv(idemTTLSecondsEnvVar, idemTTLDurEnvVar, cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}

	if v := os.Getenv(balanceEnvVar); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", balanceEnvVar, err)
		}
		cfg.BalanceInCents = cents
	}

	if cfg.AccountPIN == "" {
		return Config{}, fmt.Errorf("ACCOUNT_PIN must not be empty")
	}
	if !account.ValidCardType(cfg.CardType) {
		return Config{}, fmt.Errorf("invalid %s %q", cardTypeEnvVar, cfg.CardType)
	}
	if cfg.BalanceInCents < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", balanceEnvVar)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsProduction reports whether the app runs in a production environment.
func (c Config) IsProduction() bool {
	return strings.ToLower(c.AppEnv) == "production"
}

func durationEnv(secondsVar, durationVar string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(secondsVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", secondsVar, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	if v := os.Getenv(durationVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", durationVar, err)
		}
		return d, nil
	}
	return fallback, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
