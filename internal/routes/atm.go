package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/star-atm/star_atm/internal/ledger"
)

// RegisterLedgerRoutes wires balance queries and balance mutations.
func RegisterLedgerRoutes(r fiber.Router, h *ledger.Handler) {
	r.Get("/balance", h.Balance)
	r.Post("/deposit", h.Deposit)
	r.Post("/withdraw", h.Withdraw)
}
