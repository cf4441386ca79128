package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/sekolah-go-api/internal/config"
	"github.com/noah-isme/sekolah-go-api/internal/handler"
	"github.com/noah-isme/sekolah-go-api/internal/middleware"
	"github.com/noah-isme/sekolah-go-api/internal/models"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler         *handler.AuthHandler
	AdminHandler        *handler.AdminHandler
	StudentHandler      *handler.StudentHandler
	TeacherHandler      *handler.TeacherHandler
	NotificationHandler *handler.NotificationHandler
	Authenticate        fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Use provided auth middleware, or a no-op if nil
	authenticate := deps.Authenticate
	if authenticate == nil {
		authenticate = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth", middleware.RateLimit("auth", cfg.LoginRateLimit, time.Minute))
		deps.AuthHandler.Register(auth)
	}

	if deps.AdminHandler != nil {
		admin := api.Group("/admin", authenticate, middleware.RequireRole(models.RoleAdmin))
		deps.AdminHandler.Register(admin)
	}

	if deps.StudentHandler != nil {
		student := api.Group("/students", authenticate, middleware.RequireRole(models.RoleStudent))
		deps.StudentHandler.Register(student)
	}

	if deps.TeacherHandler != nil {
		teacher := api.Group("/teachers", authenticate, middleware.RequireRole(models.RoleTeacher, models.RoleAdmin))
		deps.TeacherHandler.Register(teacher)
	}

	if deps.NotificationHandler != nil {
		notifications := api.Group("/notifications", authenticate)
		deps.NotificationHandler.Register(notifications)
		deps.NotificationHandler.RegisterCreate(notifications, middleware.RequireRole(models.RoleTeacher, models.RoleAdmin))
	}
}
