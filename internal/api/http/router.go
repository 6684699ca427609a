package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yatraflow/yatraflow/internal/api/http/handlers"
	"github.com/yatraflow/yatraflow/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Reports        *handlers.ReportsHandler
	Users          *handlers.UsersHandler
	Settings       *handlers.SettingsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Mutating report and account routes sit
// behind the authentication middleware plus the central role policy.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/session", cfg.Auth.Session)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Auth.Logout)

	reports := app.Group("/reports")
	reports.Get("/", cfg.Reports.List)
	reports.Get("/stats", cfg.Reports.Stats)
	reports.Get("/export", cfg.Reports.Export)
	reports.Get("/:id", cfg.Reports.Get)
	reports.Post("/", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Reports.Create)
	reports.Patch("/:id", cfg.AuthMiddleware.Handle, auth.RequireReportManager(), cfg.Reports.Update)
	reports.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireReportManager(), cfg.Reports.Delete)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireUserManager())
	users.Get("/", cfg.Users.List)
	users.Delete("/:id", cfg.Users.Delete)

	settings := app.Group("/settings")
	settings.Get("/theme", cfg.Settings.GetTheme)
	settings.Put("/theme", cfg.Settings.PutTheme)
}
