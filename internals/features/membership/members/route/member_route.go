package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	memberController "gymku_backend/internals/features/membership/members/controller"
	"gymku_backend/internals/middlewares/auth"
)

// Prefix: /api/a/members — semua butuh auth, minimal role staff.
func MemberAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewMemberController(db)

	members := admin.Group("/members",
		auth.OnlyRoles(constants.RoleErrorStaff("kelola member"), constants.StaffAndAbove...),
	)

	members.Post("/", ctrl.Create)
	members.Get("/", ctrl.List)
	members.Get("/:id", ctrl.GetByID)
	members.Put("/:id", ctrl.Update)
}
