package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	staffController "gymku_backend/internals/features/users/staff/controller"
	"gymku_backend/internals/middlewares/auth"
)

// Prefix: /api/a/staff (admin/owner only)
func StaffAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := staffController.NewStaffController(db)

	staff := admin.Group("/staff",
		auth.OnlyRoles(constants.RoleErrorAdmin("kelola staff"), constants.AdminAndAbove...),
	)
	staff.Get("/", ctrl.List)
	staff.Post("/", ctrl.Create)
	staff.Put("/:id/branches", ctrl.AssignBranches)
}
