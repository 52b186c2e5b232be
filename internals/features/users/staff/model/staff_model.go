package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StaffModel struct {
	StaffID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_id" json:"staff_id"`
	StaffTenantID uuid.UUID `gorm:"type:uuid;not null;column:staff_tenant_id" json:"staff_tenant_id"`

	StaffFullName string `gorm:"not null;column:staff_full_name" json:"staff_full_name"`
	StaffEmail    string `gorm:"uniqueIndex;not null;column:staff_email" json:"staff_email"`
	StaffPhone    string `gorm:"column:staff_phone" json:"staff_phone"`

	StaffPasswordHash string `gorm:"not null;column:staff_password_hash" json:"-"`

	// owner | admin | staff (sumber role untuk klaim JWT)
	StaffRole string `gorm:"not null;default:staff;column:staff_role" json:"staff_role"`

	StaffIsActive bool `gorm:"not null;default:true;column:staff_is_active" json:"staff_is_active"`

	// Cache daftar branch_id yang ditugaskan (sumber kebenaran: staff_branches).
	// Direfresh setiap assignment berubah supaya resolver tidak perlu join.
	StaffBranchScope pq.StringArray `gorm:"type:text[];column:staff_branch_scope" json:"staff_branch_scope"`

	StaffCreatedAt time.Time      `gorm:"column:staff_created_at;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt *time.Time     `gorm:"column:staff_updated_at;autoUpdateTime" json:"staff_updated_at,omitempty"`
	StaffDeletedAt gorm.DeletedAt `gorm:"column:staff_deleted_at;index" json:"staff_deleted_at,omitempty"`
}

func (StaffModel) TableName() string { return "staffs" }

// Penugasan staff ke cabang (many-to-many + primary flag)
type StaffBranchModel struct {
	StaffBranchID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_branch_id" json:"staff_branch_id"`
	StaffBranchStaffID  uuid.UUID `gorm:"type:uuid;not null;index;column:staff_branch_staff_id" json:"staff_branch_staff_id"`
	StaffBranchBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:staff_branch_branch_id" json:"staff_branch_branch_id"`

	StaffBranchIsPrimary bool `gorm:"not null;default:false;column:staff_branch_is_primary" json:"staff_branch_is_primary"`

	StaffBranchCreatedAt time.Time `gorm:"column:staff_branch_created_at;autoCreateTime" json:"staff_branch_created_at"`
}

func (StaffBranchModel) TableName() string { return "staff_branches" }
