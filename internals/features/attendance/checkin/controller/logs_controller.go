package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/attendance/checkin/model"
	"gymku_backend/internals/features/attendance/checkin/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type AttendanceLogController struct {
	DB *gorm.DB
}

func NewAttendanceLogController(db *gorm.DB) *AttendanceLogController {
	return &AttendanceLogController{DB: db}
}

/* ===================== GET LOGS (paginated) ===================== */
// GET /api/a/check-in/logs?branch_id=&date_from=&date_to=&user_type=&status=&page=&per_page=
func (ctrl *AttendanceLogController) Logs(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	q, err := ctrl.filteredQuery(c, actor)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Model(&model.AttendanceLogModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung log kehadiran")
	}

	var rows []model.AttendanceLogModel
	if err := q.
		Order("attendance_log_check_in_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil log kehadiran")
	}

	return helper.JsonList(c, "Attendance logs", rows, helper.BuildPagination(total, paging, len(rows)))
}

/* ===================== GET INSIGHTS ===================== */
// GET /api/a/check-in/insights?branch_id=&date_from=&date_to=
// Agregasi dihitung dari rowset lengkap pada rentang filter (tanpa paging).
func (ctrl *AttendanceLogController) Insights(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	q, err := ctrl.filteredQuery(c, actor)
	if err != nil {
		return err
	}

	var rows []model.AttendanceLogModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	return helper.JsonOK(c, "Attendance insights", service.ComputeInsights(rows))
}

// filteredQuery menyusun query log + enforcement scope cabang si actor.
func (ctrl *AttendanceLogController) filteredQuery(c *fiber.Ctx, actor *helperAuth.ActorRef) (*gorm.DB, error) {
	q := ctrl.DB.Model(&model.AttendanceLogModel{})

	if raw := c.Query("branch_id"); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
		}
		if !actor.CanAccessBranch(branchID) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
		}
		q = q.Where("attendance_log_branch_id = ?", branchID)
	} else if !actor.AllBranches {
		if len(actor.BranchScope) == 0 {
			return nil, fiber.NewError(fiber.StatusForbidden, "Tidak ada cabang yang bisa diakses")
		}
		q = q.Where("attendance_log_branch_id IN ?", actor.BranchScope)
	}

	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "date_from harus format YYYY-MM-DD")
		}
		q = q.Where("attendance_log_date >= ?", from)
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "date_to harus format YYYY-MM-DD")
		}
		q = q.Where("attendance_log_date <= ?", to)
	}

	if ut := c.Query("user_type"); ut != "" {
		q = q.Where("attendance_log_user_type = ?", ut)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("attendance_log_status = ?", st)
	}

	if raw := c.Query("member_id"); raw != "" {
		memberID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "member_id tidak valid")
		}
		q = q.Where("attendance_log_member_id = ?", memberID)
	}

	return q, nil
}
