package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	tenantController "gymku_backend/internals/features/tenants/controller"
	"gymku_backend/internals/middlewares/auth"
)

// Prefix: /api/a/branches
func TenantAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := tenantController.NewBranchController(db)

	branches := admin.Group("/branches",
		auth.OnlyRoles(constants.RoleErrorStaff("lihat cabang"), constants.StaffAndAbove...),
	)
	branches.Get("/", ctrl.List)
	branches.Post("/",
		auth.OnlyRoles(constants.RoleErrorOwner("buat cabang"), constants.OwnerOnly...),
		ctrl.Create,
	)
}
