package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	"gymku_backend/internals/features/attendance/devices/model"
)

type BindOutcome int

const (
	BindCreated  BindOutcome = iota // belum ada binding aktif → buat baru
	BindMatched                     // fingerprint sama → idempoten, no-op
	BindConflict                    // sudah terdaftar di perangkat lain
)

// DecideBind aturan inti ledger, dipisah supaya bisa dites tanpa DB.
func DecideBind(existing *model.DeviceBindingModel, fingerprint string) BindOutcome {
	if existing == nil {
		return BindCreated
	}
	if existing.DeviceBindingFingerprint == fingerprint {
		return BindMatched
	}
	return BindConflict
}

type UserRef struct {
	UserType string
	MemberID *uuid.UUID
	StaffID  *uuid.UUID
}

type BindingService struct {
	DB *gorm.DB
}

func NewBindingService(db *gorm.DB) *BindingService {
	return &BindingService{DB: db}
}

// Bind registrasi/validasi perangkat untuk (user, branch).
// Binding device itu opt-in per deployment: kalau kiosk tidak mengirim
// fingerprint, caller melewatkan Bind sama sekali dan check-in jalan tanpa
// enforcement.
func (s *BindingService) Bind(ref UserRef, branchID uuid.UUID, fingerprint string, meta datatypes.JSON) (BindOutcome, *model.DeviceBindingModel, error) {
	existing, err := s.ActiveBinding(ref, branchID)
	if err != nil {
		return 0, nil, err
	}

	outcome := DecideBind(existing, fingerprint)
	if outcome != BindCreated {
		return outcome, existing, nil
	}

	row := model.DeviceBindingModel{
		DeviceBindingUserType:    ref.UserType,
		DeviceBindingMemberID:    ref.MemberID,
		DeviceBindingStaffID:     ref.StaffID,
		DeviceBindingBranchID:    branchID,
		DeviceBindingFingerprint: fingerprint,
		DeviceBindingMeta:        meta,
		DeviceBindingIsActive:    true,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return 0, nil, err
	}
	return BindCreated, &row, nil
}

// ActiveBinding ambil binding aktif (maks satu) untuk (user, branch).
func (s *BindingService) ActiveBinding(ref UserRef, branchID uuid.UUID) (*model.DeviceBindingModel, error) {
	q := s.DB.Where("device_binding_user_type = ? AND device_binding_branch_id = ? AND device_binding_is_active = true",
		ref.UserType, branchID)
	if ref.UserType == constants.UserTypeStaff {
		q = q.Where("device_binding_staff_id = ?", ref.StaffID)
	} else {
		q = q.Where("device_binding_member_id = ?", ref.MemberID)
	}

	var row model.DeviceBindingModel
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// FindActiveByFingerprint dipakai jalur kiosk ulang (session_token = fingerprint
// yang pernah dibind) untuk menemukan member tanpa input nomor HP lagi.
func (s *BindingService) FindActiveByFingerprint(branchID uuid.UUID, fingerprint string) (*model.DeviceBindingModel, error) {
	var row model.DeviceBindingModel
	err := s.DB.Where(
		"device_binding_branch_id = ? AND device_binding_fingerprint = ? AND device_binding_is_active = true",
		branchID, fingerprint,
	).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Reset menonaktifkan binding (tidak menghapus — audit trail). Setelah reset,
// Bind berikutnya dianggap registrasi baru. Otorisasi admin dicek caller.
func (s *BindingService) Reset(bindingID uuid.UUID, actorID uuid.UUID) error {
	now := time.Now()
	res := s.DB.Model(&model.DeviceBindingModel{}).
		Where("device_binding_id = ? AND device_binding_is_active = true", bindingID).
		Updates(map[string]interface{}{
			"device_binding_is_active": false,
			"device_binding_reset_at":  now,
			"device_binding_reset_by":  actorID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ResetByUser varian reset berdasarkan (user, branch) — dipakai admin yang
// tahu member/staff-nya tapi tidak pegang device_id.
func (s *BindingService) ResetByUser(ref UserRef, branchID uuid.UUID, actorID uuid.UUID) error {
	existing, err := s.ActiveBinding(ref, branchID)
	if err != nil {
		return err
	}
	if existing == nil {
		return gorm.ErrRecordNotFound
	}
	return s.Reset(existing.DeviceBindingID, actorID)
}
