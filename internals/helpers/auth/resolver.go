package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	memberModel "gymku_backend/internals/features/membership/members/model"
	tenantModel "gymku_backend/internals/features/tenants/model"
	staffModel "gymku_backend/internals/features/users/staff/model"
	helper "gymku_backend/internals/helpers"
)

// ActorRef adalah hasil resolve identitas untuk satu request.
// Per request hanya SATU role yang dipercaya; member tidak pernah lewat jalur
// ini (member di-resolve via nomor HP di kiosk, lihat ResolveMemberByPhone).
type ActorRef struct {
	Role        string
	StaffID     uuid.UUID
	TenantID    uuid.UUID
	BranchScope []uuid.UUID
	AllBranches bool // owner: tanpa batasan cabang
}

func (a *ActorRef) CanAccessBranch(branchID uuid.UUID) bool {
	if a.AllBranches {
		return true
	}
	for _, id := range a.BranchScope {
		if id == branchID {
			return true
		}
	}
	return false
}

func (a *ActorRef) IsAdmin() bool {
	return a.Role == constants.RoleAdmin || a.Role == constants.RoleOwner
}

// ResolveStaffOrAdmin memetakan kredensial (klaim yang sudah divalidasi
// middleware auth) ke staff/admin aktif + scope cabangnya.
// Token valid tapi tidak punya profil staff → 403 (bukan 401).
func ResolveStaffOrAdmin(c *fiber.Ctx, db *gorm.DB) (*ActorRef, error) {
	staffID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var staff staffModel.StaffModel
	if err := db.First(&staff, "staff_id = ? AND staff_is_active = true", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Akun tidak terdaftar sebagai staff aktif")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data staff")
	}

	ref := &ActorRef{
		Role:     staff.StaffRole,
		StaffID:  staff.StaffID,
		TenantID: staff.StaffTenantID,
	}

	switch staff.StaffRole {
	case constants.RoleOwner:
		ref.AllBranches = true

	case constants.RoleAdmin:
		// admin tenant-scoped: semua cabang aktif di tenant
		var ids []uuid.UUID
		if err := db.Model(&tenantModel.BranchModel{}).
			Where("branch_tenant_id = ? AND branch_is_active = true", staff.StaffTenantID).
			Pluck("branch_id", &ids).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar cabang")
		}
		ref.BranchScope = ids

	default:
		// staff biasa: cabang dari cache penugasan
		for _, raw := range staff.StaffBranchScope {
			if id, perr := uuid.Parse(raw); perr == nil {
				ref.BranchScope = append(ref.BranchScope, id)
			}
		}
	}

	return ref, nil
}

// ResolveMemberByPhone lookup member untuk jalur kiosk (tanpa auth).
// Nomor dinormalisasi dulu; gorm.ErrRecordNotFound diteruskan apa adanya
// supaya caller bisa balas outcome "not_found" (bukan error).
func ResolveMemberByPhone(db *gorm.DB, branchID uuid.UUID, rawPhone string) (*memberModel.MemberModel, error) {
	phone := helper.NormalizePhone(rawPhone)
	if phone == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var m memberModel.MemberModel
	if err := db.First(&m, "member_phone = ? AND member_branch_id = ?", phone, branchID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
