package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	checkinController "gymku_backend/internals/features/attendance/checkin/controller"
	notifService "gymku_backend/internals/features/notifications/service"
	"gymku_backend/internals/middlewares/auth"
)

// Prefix: /api/public/check-in — jalur kiosk, tanpa auth (rate-limited di
// group level, lihat route index).
func CheckinPublicRoutes(pub fiber.Router, db *gorm.DB, notifier *notifService.Dispatcher) {
	ctrl := checkinController.NewCheckinController(db, notifier)

	checkin := pub.Group("/check-in")
	checkin.Post("/member", ctrl.MemberCheckIn)
	checkin.Post("/register-device", ctrl.RegisterDevice)
}

// Prefix: /api/a/check-in — jalur staff/admin.
func CheckinAdminRoutes(admin fiber.Router, db *gorm.DB, notifier *notifService.Dispatcher) {
	ctrl := checkinController.NewCheckinController(db, notifier)
	logsCtrl := checkinController.NewAttendanceLogController(db)

	checkin := admin.Group("/check-in",
		auth.OnlyRoles(constants.RoleErrorStaff("check-in"), constants.StaffAndAbove...),
	)
	checkin.Post("/staff", ctrl.StaffCheckIn)
	checkin.Get("/logs", logsCtrl.Logs)
	checkin.Get("/insights", logsCtrl.Insights)

	checkin.Post("/reset-device",
		auth.OnlyRoles(constants.RoleErrorAdmin("reset device"), constants.AdminAndAbove...),
		ctrl.ResetDevice,
	)
}
