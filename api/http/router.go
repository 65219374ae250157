package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-optimizer/api/http/handlers"
)

// Register регистрирует все HTTP-маршруты в приложении Fiber.
func Register(app *fiber.App, health *handlers.HealthHandler, optimize *handlers.OptimizeHandler, optimizations *handlers.OptimizationsHandler) {
	app.Get("/", handlers.Index)

	app.Post("/optimize", optimize.Optimize)
	app.Post("/optimize-json", optimize.OptimizeJSON)

	api := app.Group("/api")
	og := api.Group("/optimizations")
	og.Get("/", optimizations.List)
	og.Get("/:id", optimizations.Get)
	og.Delete("/:id", optimizations.Delete)

	// Пробы живости и готовности для мониторинга
	v1 := api.Group("/v1")
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)
}
