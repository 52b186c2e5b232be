package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinRoute "gymku_backend/internals/features/attendance/checkin/route"
	dailyPassRoute "gymku_backend/internals/features/membership/dailypass/route"
	memberRoute "gymku_backend/internals/features/membership/members/route"
	ptRoute "gymku_backend/internals/features/membership/pt/route"
	subscriptionRoute "gymku_backend/internals/features/membership/subscriptions/route"
	notifService "gymku_backend/internals/features/notifications/service"
	tenantRoute "gymku_backend/internals/features/tenants/route"
	authRoute "gymku_backend/internals/features/users/auth/route"
	staffRoute "gymku_backend/internals/features/users/staff/route"
	"gymku_backend/internals/middlewares"
	"gymku_backend/internals/middlewares/auth"
)

// SetupRoutes menyusun tiga area:
//   - /api/auth    → login/logout
//   - /api/public  → kiosk check-in, tanpa auth, rate limit ketat per device
//   - /api/a       → area staff/admin, wajib JWT
func SetupRoutes(app *fiber.App, db *gorm.DB, notifier *notifService.Dispatcher) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	public := api.Group("/public", middlewares.KioskRateLimiter())
	checkinRoute.CheckinPublicRoutes(public, db, notifier)

	admin := api.Group("/a", auth.AuthMiddleware(db))
	checkinRoute.CheckinAdminRoutes(admin, db, notifier)
	memberRoute.MemberAdminRoutes(admin, db)
	subscriptionRoute.SubscriptionAdminRoutes(admin, db)
	ptRoute.PTAdminRoutes(admin, db)
	dailyPassRoute.DailyPassAdminRoutes(admin, db)
	tenantRoute.TenantAdminRoutes(admin, db)
	staffRoute.StaffAdminRoutes(admin, db)
}
