package handlers

import "github.com/gofiber/fiber/v2"

var endpoints = []string{
	"POST /optimize",
	"POST /optimize-json",
	"GET /api/optimizations",
	"GET /api/optimizations/{id}",
	"DELETE /api/optimizations/{id}",
	"GET /api/v1/health",
	"GET /api/v1/ready",
	"GET /swagger/index.html",
}

// Index перечисляет публичные эндпоинты.
// @Summary Список эндпоинтов
// @Tags    Служебное
// @Produce json
// @Success 200 {object} map[string]any
// @Router  / [get]
func Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Resume Optimizer API",
		"endpoints": endpoints,
	})
}
