package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusCheckedIn  = "checked_in"
	AttendanceStatusCheckedOut = "checked_out"
	AttendanceStatusExpired    = "expired" // check-in dengan membership kadaluarsa
)

// Satu baris per kunjungan fisik. Dibuat saat check-in, dimutasi sekali saat
// check-out. Maksimal satu baris "open" (check_out_at NULL) per user/branch/hari —
// scan baru saat masih open diperlakukan sebagai close, bukan open baru.
type AttendanceLogModel struct {
	AttendanceLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_log_id" json:"attendance_log_id"`

	AttendanceLogUserType string     `gorm:"not null;column:attendance_log_user_type" json:"attendance_log_user_type"`
	AttendanceLogMemberID *uuid.UUID `gorm:"type:uuid;index;column:attendance_log_member_id" json:"attendance_log_member_id,omitempty"`
	AttendanceLogStaffID  *uuid.UUID `gorm:"type:uuid;index;column:attendance_log_staff_id" json:"attendance_log_staff_id,omitempty"`

	AttendanceLogBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_log_branch_id" json:"attendance_log_branch_id"`

	AttendanceLogDate       time.Time  `gorm:"type:date;not null;index;column:attendance_log_date" json:"attendance_log_date"`
	AttendanceLogCheckInAt  time.Time  `gorm:"not null;column:attendance_log_check_in_at" json:"attendance_log_check_in_at"`
	AttendanceLogCheckOutAt *time.Time `gorm:"column:attendance_log_check_out_at" json:"attendance_log_check_out_at,omitempty"`

	AttendanceLogStatus     string   `gorm:"not null;column:attendance_log_status" json:"attendance_log_status"`
	AttendanceLogTotalHours *float64 `gorm:"column:attendance_log_total_hours" json:"attendance_log_total_hours,omitempty"`

	// snapshot status membership saat scan (active/expiring_soon/expired/no_subscription)
	AttendanceLogSubscriptionStatus string `gorm:"not null;default:active;column:attendance_log_subscription_status" json:"attendance_log_subscription_status"`

	AttendanceLogCreatedAt time.Time  `gorm:"column:attendance_log_created_at;autoCreateTime" json:"attendance_log_created_at"`
	AttendanceLogUpdatedAt *time.Time `gorm:"column:attendance_log_updated_at;autoUpdateTime" json:"attendance_log_updated_at,omitempty"`
}

func (AttendanceLogModel) TableName() string { return "attendance_logs" }
