package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pigsheadbbq/site/internal/api/http/handlers"
	"github.com/pigsheadbbq/site/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Auth      *handlers.AuthHandler
	Menu      *handlers.MenuHandler
	Subscribe *handlers.SubscribeHandler
	Health    *handlers.HealthHandler
	Gate      *auth.Gate
	SiteDir   string
}

// RegisterRoutes wires HTTP routes. The gate runs ahead of every route;
// it exempts /login, /logout and the /api/ prefix itself.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gate.Handle)

	app.Get("/login", cfg.Auth.LoginForm)
	app.Post("/login", cfg.Auth.LoginSubmit)
	app.Get("/logout", cfg.Auth.Logout)

	app.Get("/menu.pdf", cfg.Menu.MenuPDF)
	app.Get("/catering-menu.pdf", cfg.Menu.CateringMenuPDF)

	app.Post("/api/subscribe", cfg.Subscribe.Subscribe)
	app.Get("/api/health/live", cfg.Health.Live)
	app.Get("/api/health/ready", cfg.Health.Ready)

	app.Static("/", cfg.SiteDir)
}
