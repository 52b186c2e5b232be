package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "gymku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu CORS, logging, dan rate limit global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
