package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	subController "gymku_backend/internals/features/membership/subscriptions/controller"
	"gymku_backend/internals/middlewares/auth"
)

// Prefix: /api/a — paket & subscription.
func SubscriptionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	subCtrl := subController.NewSubscriptionController(db)
	pkgCtrl := subController.NewPackageController(db)

	packages := admin.Group("/packages",
		auth.OnlyRoles(constants.RoleErrorStaff("lihat paket"), constants.StaffAndAbove...),
	)
	packages.Get("/", pkgCtrl.List)
	packages.Post("/", pkgCtrl.Create)
	packages.Delete("/:id", pkgCtrl.Delete)

	subs := admin.Group("/subscriptions",
		auth.OnlyRoles(constants.RoleErrorStaff("kelola subscription"), constants.StaffAndAbove...),
	)
	subs.Post("/", subCtrl.Create)
	subs.Get("/status/:member_id", subCtrl.Status)
	subs.Get("/member/:member_id", subCtrl.History)
	subs.Patch("/:id/status", subCtrl.SetStatus)
}
