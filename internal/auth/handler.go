package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/star-atm/star_atm/internal/ledger"
)

// CookieConfig describes how the session token is carried between
// requests. MaxAge mirrors the registry TTL so transport and registry
// never disagree about session lifetime.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Handler exposes session endpoints: PIN login, session restore, logout.
type Handler struct {
	svc    *Service
	views  *ledger.Service
	cookie CookieConfig
}

// NewHandler builds a session HTTP handler.
func NewHandler(svc *Service, views *ledger.Service, cookie CookieConfig) *Handler {
	return &Handler{svc: svc, views: views, cookie: cookie}
}

type loginRequest struct {
	PIN string `json:"pin"`
}

// Login validates the PIN and starts a session.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "PIN is required.")
	}
	pin := strings.TrimSpace(req.PIN)
	if pin == "" {
		return fiber.NewError(http.StatusBadRequest, "PIN is required.")
	}

	grant, err := h.svc.Authenticate(c.UserContext(), pin)
	if err != nil {
		if errors.Is(err, ErrInvalidCredential) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid PIN.")
		}
		return fiber.NewError(http.StatusInternalServerError, "Could not start session.")
	}

	c.Cookie(h.sessionCookie(grant.Token, h.cookie.MaxAge))
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "PIN accepted.",
		"session": grant.View,
	})
}

// Restore returns the view for an existing session.
func (h *Handler) Restore(c *fiber.Ctx) error {
	view, err := h.views.View(c.UserContext(), c.Cookies(h.cookie.Name))
	if err != nil {
		if errors.Is(err, ledger.ErrUnauthenticated) {
			return fiber.NewError(http.StatusUnauthorized, "No active session.")
		}
		return fiber.NewError(http.StatusInternalServerError, "Could not restore session.")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Session restored.",
		"session": view,
	})
}

// Logout ends the session. It always succeeds.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.svc.Logout(c.UserContext(), c.Cookies(h.cookie.Name)); err != nil {
		return fiber.NewError(http.StatusInternalServerError, "Could not end session.")
	}
	c.Cookie(h.sessionCookie("", -time.Second))
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Session ended."})
}

func (h *Handler) sessionCookie(value string, maxAge time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
