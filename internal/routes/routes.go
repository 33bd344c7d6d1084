package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/star-atm/star_atm/internal/account"
	"github.com/star-atm/star_atm/internal/auth"
	"github.com/star-atm/star_atm/internal/config"
	"github.com/star-atm/star_atm/internal/ledger"
	"github.com/star-atm/star_atm/internal/middleware"
	"github.com/star-atm/star_atm/internal/session"
)

// sessionCookie carries the opaque session token between requests.
const sessionCookie = "atm_session"

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// The credential is stored hashed; the configured PIN never
	// outlives startup.
	pinHash, err := auth.HashPIN(d.Cfg.AccountPIN)
	if err != nil {
		return fmt.Errorf("seed account: %w", err)
	}

	store := account.NewStore(account.Account{
		ID:             d.Cfg.AccountID,
		Name:           d.Cfg.AccountName,
		PINHash:        pinHash,
		CardType:       d.Cfg.CardType,
		Currency:       d.Cfg.Currency,
		BalanceInCents: d.Cfg.BalanceInCents,
	})

	var sessions session.Registry
	if d.Cache != nil {
		sessions = session.NewRedisRegistry(d.Cache, d.Cfg.SessionTTL)
	} else {
		sessions = session.NewMemoryRegistry(d.Cfg.SessionTTL)
	}

	ledgerSvc := ledger.NewService(store, sessions)
	authSvc := auth.NewService(store, sessions)

	authHandler := auth.NewHandler(authSvc, ledgerSvc, auth.CookieConfig{
		Name:   sessionCookie,
		MaxAge: d.Cfg.SessionTTL,
		Secure: d.Cfg.IsProduction(),
	})
	ledgerHandler := ledger.NewHandler(ledgerSvc, sessionCookie)

	// API routes
	api := app.Group("/api/atm")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterSessionRoutes(api, authHandler)
	RegisterLedgerRoutes(api, ledgerHandler)

	return nil
}
