package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Kiosk member: kunjungan pertama kirim phone (+fingerprint opsional),
// kunjungan berikutnya cukup session_token (= fingerprint yang sudah dibind).
type MemberCheckInRequest struct {
	Phone             string         `json:"phone"`
	SessionToken      string         `json:"session_token"`
	DeviceFingerprint string         `json:"device_fingerprint"`
	DeviceMeta        datatypes.JSON `json:"device_meta,omitempty"`
}

type StaffCheckInRequest struct {
	DeviceFingerprint string         `json:"device_fingerprint"`
	DeviceMeta        datatypes.JSON `json:"device_meta,omitempty"`
}

type RegisterDeviceRequest struct {
	BranchID          uuid.UUID      `json:"branch_id" validate:"required"`
	Phone             string         `json:"phone" validate:"required"`
	DeviceFingerprint string         `json:"device_fingerprint" validate:"required"`
	DeviceMeta        datatypes.JSON `json:"device_meta,omitempty"`
}

// Reset bisa by device_id langsung, atau by (user_type, member/staff, branch).
type ResetDeviceRequest struct {
	DeviceID *uuid.UUID `json:"device_id"`
	UserType string     `json:"user_type" validate:"omitempty,oneof=member staff"`
	MemberID *uuid.UUID `json:"member_id"`
	StaffID  *uuid.UUID `json:"staff_id"`
	BranchID *uuid.UUID `json:"branch_id"`
}
