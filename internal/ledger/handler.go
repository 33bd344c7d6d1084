package ledger

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/star-atm/star_atm/internal/account"
)

// Handler exposes balance, deposit and withdraw endpoints. The session
// token travels in the configured cookie; the service resolves it.
type Handler struct {
	svc        *Service
	cookieName string
}

// NewHandler builds a ledger HTTP handler.
func NewHandler(svc *Service, cookieName string) *Handler {
	return &Handler{svc: svc, cookieName: cookieName}
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

// parseAmount extracts the requested amount. Unparseable bodies become
// NaN so the service rejects them after the session check, keeping the
// error precedence uniform: session first, amount second.
func parseAmount(c *fiber.Ctx) float64 {
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return math.NaN()
	}
	return req.Amount
}

// Balance returns the current balance for the session holder.
func (h *Handler) Balance(c *fiber.Ctx) error {
	view, err := h.svc.View(c.UserContext(), c.Cookies(h.cookieName))
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"balance":  view.Balance,
		"currency": view.Currency,
	})
}

// Deposit credits the requested amount.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	receipt, err := h.svc.Deposit(c.UserContext(), c.Cookies(h.cookieName), parseAmount(c))
	if err != nil {
		return mapError(err)
	}

	deposited := toDecimal(receipt.DeltaInCents)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":   fmt.Sprintf("Deposited $%.2f successfully.", deposited),
		"deposited": deposited,
		"balance":   receipt.View.Balance,
		"currency":  receipt.View.Currency,
	})
}

// Withdraw debits the requested amount.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	receipt, err := h.svc.Withdraw(c.UserContext(), c.Cookies(h.cookieName), parseAmount(c))
	if err != nil {
		return mapError(err)
	}

	withdrawn := toDecimal(receipt.DeltaInCents)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":   fmt.Sprintf("Withdrew $%.2f successfully.", withdrawn),
		"withdrawn": withdrawn,
		"balance":   receipt.View.Balance,
		"currency":  receipt.View.Currency,
	})
}

// mapError translates every domain failure to an HTTP error. The
// mapping is total; anything unrecognized becomes a 500.
func mapError(err error) error {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return fiber.NewError(http.StatusUnauthorized, "No account found.")
	case errors.Is(err, ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, "Please provide a valid amount greater than $0.")
	case errors.Is(err, account.ErrInsufficientFunds):
		return fiber.NewError(http.StatusConflict, "Insufficient funds.")
	default:
		return fiber.NewError(http.StatusInternalServerError, "Operation failed.")
	}
}
