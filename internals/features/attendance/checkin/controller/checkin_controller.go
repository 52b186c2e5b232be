package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	"gymku_backend/internals/constants"
	"gymku_backend/internals/features/attendance/checkin/dto"
	checkinService "gymku_backend/internals/features/attendance/checkin/service"
	deviceService "gymku_backend/internals/features/attendance/devices/service"
	memberModel "gymku_backend/internals/features/membership/members/model"
	subService "gymku_backend/internals/features/membership/subscriptions/service"
	notifService "gymku_backend/internals/features/notifications/service"
	tenantModel "gymku_backend/internals/features/tenants/model"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type CheckinController struct {
	DB         *gorm.DB
	Reconciler *checkinService.ReconcileService
	Bindings   *deviceService.BindingService
	Classifier *subService.Classifier
	Notifier   *notifService.Dispatcher
}

func NewCheckinController(db *gorm.DB, notifier *notifService.Dispatcher) *CheckinController {
	return &CheckinController{
		DB:         db,
		Reconciler: checkinService.NewReconcileService(db),
		Bindings:   deviceService.NewBindingService(db),
		Classifier: subService.NewClassifier(db),
		Notifier:   notifier,
	}
}

/* ===================== MEMBER CHECK-IN (kiosk, tanpa auth) ===================== */
// POST /api/public/check-in/member?branch_id=...
//
// Semua hasil (termasuk not_found & device_mismatch) dibalas 200 dengan code
// di body — buat kiosk itu state UI, bukan error HTTP.
func (ctrl *CheckinController) MemberCheckIn(c *fiber.Ctx) error {
	branchID, err := parseBranchID(c)
	if err != nil {
		return err
	}

	var req dto.MemberCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	now := time.Now()

	// 1) Resolve member: session_token (device yang sudah dibind) atau phone
	var member *memberModel.MemberModel
	fingerprint := req.DeviceFingerprint

	if req.SessionToken != "" {
		binding, err := ctrl.Bindings.FindActiveByFingerprint(branchID, req.SessionToken)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca device binding")
		}
		if binding == nil || binding.DeviceBindingMemberID == nil {
			return helper.JsonOK(c, "Device not recognized", checkinService.Outcome{
				Code:    "not_found",
				Message: "Device not recognized. Please check in with your phone number.",
			})
		}
		var m memberModel.MemberModel
		if err := ctrl.DB.First(&m, "member_id = ?", binding.DeviceBindingMemberID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data member")
		}
		member = &m
		fingerprint = req.SessionToken
	} else {
		m, err := helperAuth.ResolveMemberByPhone(ctrl.DB, branchID, req.Phone)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonOK(c, "Member not found", checkinService.Outcome{
					Code:    "not_found",
					Message: "Phone number not registered at this branch. Please register at the front desk.",
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data member")
		}
		member = m
	}

	ref := checkinService.UserRef{
		UserType: constants.UserTypeMember,
		MemberID: &member.MemberID,
	}

	// 2) Device binding (opt-in): tanpa fingerprint, check-in jalan tanpa
	// enforcement sama sekali.
	if fingerprint != "" {
		outcome, _, err := ctrl.Bindings.Bind(deviceService.UserRef{
			UserType: constants.UserTypeMember,
			MemberID: &member.MemberID,
		}, branchID, fingerprint, req.DeviceMeta)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses device binding")
		}
		if outcome == deviceService.BindConflict {
			return helper.JsonOK(c, "Device mismatch", checkinService.Outcome{
				Code:    "device_mismatch",
				Message: "This account is registered on another device. Please contact admin to reset.",
			})
		}
	}

	// 3) Status membership (tanggal = ground truth)
	subStatus, _, err := ctrl.Classifier.Classify(member.MemberID, now)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung status membership")
	}

	// 4) Reconcile scan → tulis log
	outcome, err := ctrl.Reconciler.Reconcile(ref, branchID, now, subStatus)
	if err != nil {
		log.Printf("[ERROR] reconcile member %s: %v", member.MemberID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}

	// 5) Side effect expired: lapor admin via WhatsApp. Fire-and-forget —
	// gagal kirim tidak boleh menggagalkan check-in.
	if outcome.Code == "expired" {
		ctrl.notifyExpired(member, branchID, now)
	}

	return helper.JsonOK(c, outcome.Message, outcome)
}

/* ===================== STAFF CHECK-IN (authenticated) ===================== */
// POST /api/a/check-in/staff?branch_id=...
func (ctrl *CheckinController) StaffCheckIn(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	branchID, err := parseBranchID(c)
	if err != nil {
		return err
	}
	if !actor.CanAccessBranch(branchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	var req dto.StaffCheckInRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if req.DeviceFingerprint != "" {
		outcome, _, err := ctrl.Bindings.Bind(deviceService.UserRef{
			UserType: constants.UserTypeStaff,
			StaffID:  &actor.StaffID,
		}, branchID, req.DeviceFingerprint, req.DeviceMeta)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses device binding")
		}
		if outcome == deviceService.BindConflict {
			return helper.JsonOK(c, "Device mismatch", checkinService.Outcome{
				Code:    "device_mismatch",
				Message: "Your account is registered on another device. Please contact admin to reset.",
			})
		}
	}

	// Staff selalu "active" untuk keperluan attendance
	ref := checkinService.UserRef{
		UserType: constants.UserTypeStaff,
		StaffID:  &actor.StaffID,
	}
	outcome, err := ctrl.Reconciler.Reconcile(ref, branchID, time.Now(), subService.StatusActive)
	if err != nil {
		log.Printf("[ERROR] reconcile staff %s: %v", actor.StaffID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}

	return helper.JsonOK(c, outcome.Message, outcome)
}

/* ===================== REGISTER DEVICE ===================== */
// POST /api/public/check-in/register-device — idempoten per (user, branch)
func (ctrl *CheckinController) RegisterDevice(c *fiber.Ctx) error {
	var req dto.RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	member, err := helperAuth.ResolveMemberByPhone(ctrl.DB, req.BranchID, req.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan di cabang ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data member")
	}

	outcome, binding, err := ctrl.Bindings.Bind(deviceService.UserRef{
		UserType: constants.UserTypeMember,
		MemberID: &member.MemberID,
	}, req.BranchID, req.DeviceFingerprint, req.DeviceMeta)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan device binding")
	}

	switch outcome {
	case deviceService.BindConflict:
		return helper.Error(c, fiber.StatusConflict, "Account already registered on another device")
	case deviceService.BindMatched:
		return helper.JsonOK(c, "Device already registered", binding)
	default:
		return helper.JsonCreated(c, "Device registered", binding)
	}
}

/* ===================== RESET DEVICE (admin only) ===================== */
// POST /api/a/check-in/reset-device
func (ctrl *CheckinController) ResetDevice(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("reset device"))
	}

	var req dto.ResetDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if req.DeviceID != nil {
		err = ctrl.Bindings.Reset(*req.DeviceID, actor.StaffID)
	} else {
		if req.BranchID == nil || (req.MemberID == nil && req.StaffID == nil) {
			return fiber.NewError(fiber.StatusBadRequest, "Butuh device_id, atau member_id/staff_id + branch_id")
		}
		userType := req.UserType
		if userType == "" {
			userType = constants.UserTypeMember
			if req.StaffID != nil {
				userType = constants.UserTypeStaff
			}
		}
		err = ctrl.Bindings.ResetByUser(deviceService.UserRef{
			UserType: userType,
			MemberID: req.MemberID,
			StaffID:  req.StaffID,
		}, *req.BranchID, actor.StaffID)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Binding aktif tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal reset device")
	}
	return helper.JsonOK(c, "Device berhasil direset; perangkat baru bisa didaftarkan", nil)
}

/* ===================== helpers ===================== */

func parseBranchID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Query("branch_id")
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "branch_id wajib diisi")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
	}
	return id, nil
}

func (ctrl *CheckinController) notifyExpired(member *memberModel.MemberModel, branchID uuid.UUID, at time.Time) {
	if ctrl.Notifier == nil {
		return
	}

	branchName := branchID.String()
	adminPhone := ""
	var branch tenantModel.BranchModel
	if err := ctrl.DB.First(&branch, "branch_id = ?", branchID).Error; err == nil {
		branchName = branch.BranchName
		if branch.BranchPhone != nil {
			adminPhone = *branch.BranchPhone
		}
	}
	if adminPhone == "" {
		adminPhone = helper.NormalizePhone(configs.GetEnv("ADMIN_WHATSAPP"))
	}
	if adminPhone == "" {
		return
	}

	ctrl.Notifier.Enqueue(notifService.Notification{
		Phone:   adminPhone,
		Message: notifService.ExpiredCheckInMessage(member.MemberName, member.MemberPhone, branchName, at),
	})
}
