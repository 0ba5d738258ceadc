package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Sessions       *handlers.SessionsHandler
	Tickets        *handlers.TicketsHandler
	Users          *handlers.UsersHandler
	Assets         *handlers.AssetsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/sign-in", cfg.Sessions.SignIn)

	session := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	session.Post("/sign-out", cfg.Sessions.SignOut)
	session.Get("/me", cfg.Sessions.Me)
	session.Post("/change-password", cfg.Sessions.ChangePassword)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	tickets.Post("", cfg.Tickets.CreateTicket)
	tickets.Get("", cfg.Tickets.ListTickets)
	tickets.Get("/pending-escalations", cfg.Tickets.ListPendingEscalations)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Post("/:id/validate", cfg.Tickets.ValidateTicket)
	tickets.Post("/:id/close", cfg.Tickets.CloseTicket)
	tickets.Delete("/:id", cfg.Tickets.DeleteTicket)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Post("/users", cfg.Users.Provision)
	admin.Get("/users", cfg.Users.List)
	admin.Delete("/users/:id", cfg.Users.Delete)
	admin.Post("/users/:id/reset-password", cfg.Users.ResetPassword)
	admin.Post("/assets/import", cfg.Assets.Import)
}
