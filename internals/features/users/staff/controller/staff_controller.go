package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	branchModel "gymku_backend/internals/features/tenants/model"
	"gymku_backend/internals/features/users/staff/dto"
	"gymku_backend/internals/features/users/staff/model"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type StaffController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/a/staff (admin/owner). Owner dibuat lewat seeding, bukan endpoint.
func (ctrl *StaffController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("kelola staff"))
	}

	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// admin biasa tidak boleh membuat sesama admin
	if req.Role == constants.RoleAdmin && actor.Role != constants.RoleOwner {
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner("buat admin"))
	}

	for _, branchID := range req.BranchIDs {
		if !actor.CanAccessBranch(branchID) {
			return fiber.NewError(fiber.StatusForbidden, "Cabang di luar scope Anda")
		}
	}
	if err := ctrl.ensureBranchesExist(actor.TenantID, req.BranchIDs); err != nil {
		return err
	}

	var count int64
	if err := ctrl.DB.Model(&model.StaffModel{}).
		Where("staff_email = ?", req.Email).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	staff := model.StaffModel{
		StaffTenantID:     actor.TenantID,
		StaffFullName:     req.FullName,
		StaffEmail:        req.Email,
		StaffPhone:        helper.NormalizePhone(req.Phone),
		StaffPasswordHash: string(hash),
		StaffRole:         req.Role,
		StaffIsActive:     true,
		StaffBranchScope:  toScopeCache(req.BranchIDs),
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&staff).Error; err != nil {
			return err
		}
		return replaceBranchAssignments(tx, staff.StaffID, req.BranchIDs, 0)
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan staff")
	}

	return helper.JsonCreated(c, "Staff berhasil dibuat", staff)
}

/* ===================== ASSIGN BRANCHES ===================== */
// PUT /api/a/staff/:id/branches — replace seluruh assignment + refresh cache
func (ctrl *StaffController) AssignBranches(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("kelola staff"))
	}

	staffID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID staff tidak valid")
	}

	var req dto.AssignBranchesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	primaryIdx := 0
	if req.PrimaryIndex != nil {
		primaryIdx = *req.PrimaryIndex
	}
	if primaryIdx >= len(req.BranchIDs) {
		return fiber.NewError(fiber.StatusBadRequest, "primary_index di luar jangkauan branch_ids")
	}

	var staff model.StaffModel
	if err := ctrl.DB.First(&staff, "staff_id = ? AND staff_tenant_id = ?", staffID, actor.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil staff")
	}

	for _, branchID := range req.BranchIDs {
		if !actor.CanAccessBranch(branchID) {
			return fiber.NewError(fiber.StatusForbidden, "Cabang di luar scope Anda")
		}
	}
	if err := ctrl.ensureBranchesExist(actor.TenantID, req.BranchIDs); err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := replaceBranchAssignments(tx, staffID, req.BranchIDs, primaryIdx); err != nil {
			return err
		}
		return tx.Model(&model.StaffModel{}).
			Where("staff_id = ?", staffID).
			Update("staff_branch_scope", toScopeCache(req.BranchIDs)).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui assignment")
	}

	return helper.JsonOK(c, "Assignment cabang diperbarui", fiber.Map{
		"staff_id":   staffID,
		"branch_ids": req.BranchIDs,
	})
}

/* ===================== LIST ===================== */
// GET /api/a/staff
func (ctrl *StaffController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("lihat staff"))
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.StaffModel{}).
		Where("staff_tenant_id = ?", actor.TenantID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung staff")
	}

	var staffs []model.StaffModel
	if err := q.Order("staff_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&staffs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil staff")
	}
	return helper.JsonList(c, "Staff", staffs, helper.BuildPagination(total, paging, len(staffs)))
}

/* ===================== helpers ===================== */

func (ctrl *StaffController) ensureBranchesExist(tenantID uuid.UUID, branchIDs []uuid.UUID) error {
	var count int64
	if err := ctrl.DB.Model(&branchModel.BranchModel{}).
		Where("branch_tenant_id = ? AND branch_id IN ? AND branch_is_active = TRUE", tenantID, branchIDs).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa cabang")
	}
	if count != int64(len(branchIDs)) {
		return fiber.NewError(fiber.StatusBadRequest, "Ada branch_id yang tidak dikenal atau nonaktif")
	}
	return nil
}

func replaceBranchAssignments(tx *gorm.DB, staffID uuid.UUID, branchIDs []uuid.UUID, primaryIdx int) error {
	if err := tx.Delete(&model.StaffBranchModel{}, "staff_branch_staff_id = ?", staffID).Error; err != nil {
		return err
	}
	rows := make([]model.StaffBranchModel, 0, len(branchIDs))
	for i, branchID := range branchIDs {
		rows = append(rows, model.StaffBranchModel{
			StaffBranchStaffID:   staffID,
			StaffBranchBranchID:  branchID,
			StaffBranchIsPrimary: i == primaryIdx,
		})
	}
	return tx.Create(&rows).Error
}

func toScopeCache(branchIDs []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(branchIDs))
	for _, id := range branchIDs {
		out = append(out, id.String())
	}
	return out
}
