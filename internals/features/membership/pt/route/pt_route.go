package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	ptController "gymku_backend/internals/features/membership/pt/controller"
	"gymku_backend/internals/middlewares/auth"
)

// Prefix: /api/a — trainer & PT subscription.
func PTAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := ptController.NewPTController(db)

	trainers := admin.Group("/trainers",
		auth.OnlyRoles(constants.RoleErrorStaff("lihat trainer"), constants.StaffAndAbove...),
	)
	trainers.Get("/", ctrl.ListTrainers)
	trainers.Post("/", ctrl.CreateTrainer)

	pt := admin.Group("/pt",
		auth.OnlyRoles(constants.RoleErrorStaff("kelola PT"), constants.StaffAndAbove...),
	)
	pt.Get("/plan", ctrl.Plan)
	pt.Post("/subscriptions", ctrl.Subscribe)
}
