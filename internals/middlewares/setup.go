package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	loggerMw "shikshasync_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan:
// recovery → cors → logger → rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INIT] Memasang middleware dasar...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
