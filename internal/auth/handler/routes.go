package handler

import (
	"github.com/dityarw/auth-service/internal/auth/middleware"
	authconstant "github.com/dityarw/auth-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, guard fiber.Handler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Delete("/api/v1/session", h.Logout)

	api := app.Group("/api/v1", guard)
	api.Get("/me", h.Me)
	api.Get("/users", h.GetAllUsers)
	api.Get("/user/:id/sessions", h.GetUserSessions)

	// Admin-only endpoints
	api.Delete("/user/:id/sessions", middleware.RequireRole(authconstant.AdminRole), h.ForceLogout)
	api.Patch("/user/:id/role", middleware.RequireRole(authconstant.AdminRole), h.UpdateUserRole)
}
