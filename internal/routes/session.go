package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/star-atm/star_atm/internal/auth"
)

// RegisterSessionRoutes wires PIN login, session restore and logout.
func RegisterSessionRoutes(r fiber.Router, h *auth.Handler) {
	r.Post("/session", h.Login)
	r.Get("/session", h.Restore)
	r.Post("/logout", h.Logout)
}
