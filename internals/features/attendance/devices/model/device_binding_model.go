package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Ledger perangkat kiosk: maksimal SATU binding aktif per (user_type, user, branch).
// Reset tidak menghapus baris (audit trail), hanya menonaktifkan.
//
// Uniqueness aktif dijaga di DB lewat partial unique index supaya dua registrasi
// pertama yang nyaris bersamaan tidak bisa sama-sama aktif:
//
//	CREATE UNIQUE INDEX uq_device_bindings_active
//	ON device_bindings (device_binding_user_type, COALESCE(device_binding_member_id, device_binding_staff_id), device_binding_branch_id)
//	WHERE device_binding_is_active;
type DeviceBindingModel struct {
	DeviceBindingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:device_binding_id" json:"device_binding_id"`

	// member | staff — tepat satu dari kolom id di bawah terisi
	DeviceBindingUserType string     `gorm:"not null;column:device_binding_user_type" json:"device_binding_user_type"`
	DeviceBindingMemberID *uuid.UUID `gorm:"type:uuid;index;column:device_binding_member_id" json:"device_binding_member_id,omitempty"`
	DeviceBindingStaffID  *uuid.UUID `gorm:"type:uuid;index;column:device_binding_staff_id" json:"device_binding_staff_id,omitempty"`

	DeviceBindingBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:device_binding_branch_id" json:"device_binding_branch_id"`

	DeviceBindingFingerprint string `gorm:"not null;index;column:device_binding_fingerprint" json:"device_binding_fingerprint"`

	// info bebas dari klien (user agent, label perangkat, dsb)
	DeviceBindingMeta datatypes.JSON `gorm:"column:device_binding_meta" json:"device_binding_meta,omitempty"`

	DeviceBindingIsActive bool `gorm:"not null;default:true;column:device_binding_is_active" json:"device_binding_is_active"`

	DeviceBindingResetAt *time.Time `gorm:"column:device_binding_reset_at" json:"device_binding_reset_at,omitempty"`
	DeviceBindingResetBy *uuid.UUID `gorm:"type:uuid;column:device_binding_reset_by" json:"device_binding_reset_by,omitempty"`

	DeviceBindingCreatedAt time.Time `gorm:"column:device_binding_created_at;autoCreateTime" json:"device_binding_created_at"`
}

func (DeviceBindingModel) TableName() string { return "device_bindings" }
