package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	dpController "gymku_backend/internals/features/membership/dailypass/controller"
	"gymku_backend/internals/middlewares/auth"
)

// Prefix: /api/a/daily-passes
func DailyPassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := dpController.NewDailyPassController(db)

	passes := admin.Group("/daily-passes",
		auth.OnlyRoles(constants.RoleErrorStaff("kelola daily pass"), constants.StaffAndAbove...),
	)
	passes.Post("/", ctrl.Create)
	passes.Get("/", ctrl.List)
	passes.Patch("/:id/paid", ctrl.MarkPaid)
}
