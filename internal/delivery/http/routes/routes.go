package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/handler"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/middleware"
)

type Registry struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Jobs         *handler.JobsHandler
	Applications *handler.ApplicationHandler
	Resume       *handler.ResumeHandler
	Chat         *handler.ChatHandler

	AuthMiddleware *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.Auth.RegisterRoutes(api.Group("/auth"))
	r.Jobs.RegisterRoutes(api.Group("/jobs"))

	// Mutating per-user state requires a valid bearer token.
	authed := r.AuthMiddleware.Middleware()
	r.Applications.RegisterRoutes(api.Group("/applications", authed))
	r.Resume.RegisterRoutes(api.Group("/resume", authed))
	r.Chat.RegisterRoutes(api.Group("/chat", authed))
}
