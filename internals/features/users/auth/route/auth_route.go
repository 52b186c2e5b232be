package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gymku_backend/internals/features/users/auth/controller"
	"gymku_backend/internals/middlewares"
	"gymku_backend/internals/middlewares/auth"
)

// Prefix: /api/auth
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	authGroup.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)

	authGroup.Post("/logout", auth.AuthMiddleware(db), ctrl.Logout)
	authGroup.Get("/me", auth.AuthMiddleware(db), ctrl.Me)
}
