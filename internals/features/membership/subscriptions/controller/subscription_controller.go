package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "gymku_backend/internals/features/membership/members/model"
	"gymku_backend/internals/features/membership/subscriptions/dto"
	"gymku_backend/internals/features/membership/subscriptions/model"
	"gymku_backend/internals/features/membership/subscriptions/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type SubscriptionController struct {
	DB         *gorm.DB
	Validate   *validator.Validate
	Classifier *service.Classifier
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{
		DB:         db,
		Validate:   validator.New(),
		Classifier: service.NewClassifier(db),
	}
}

/* ===================== CREATE / RENEW ===================== */
// POST /api/a/subscriptions
// Renewal = create juga: baris baru per periode, history tidak ditimpa.
func (ctrl *SubscriptionController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	var req dto.CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", req.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}
	if !actor.CanAccessBranch(member.MemberBranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	durationDays := 0
	var price int64
	if req.PackageID != nil {
		var pkg model.PackageModel
		if err := ctrl.DB.First(&pkg, "package_id = ? AND package_is_active = TRUE", req.PackageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan atau nonaktif")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil paket")
		}
		durationDays = pkg.PackageDurationDays
		price = pkg.PackagePrice
	} else {
		if req.DurationDays == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Butuh package_id atau duration_days")
		}
		durationDays = *req.DurationDays
		if req.Price != nil {
			price = *req.Price
		}
	}

	start, err := ctrl.resolveStartDate(req, member.MemberID)
	if err != nil {
		return err
	}
	end := start.AddDate(0, 0, durationDays)

	sub := model.SubscriptionModel{
		SubscriptionMemberID:  member.MemberID,
		SubscriptionPackageID: req.PackageID,
		SubscriptionStartDate: start,
		SubscriptionEndDate:   end,
		SubscriptionStatus:    model.SubscriptionStatusActive,
		SubscriptionPrice:     price,
	}
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan subscription")
	}
	return helper.JsonCreated(c, "Subscription berhasil dibuat", sub)
}

// Default start: lanjut dari periode aktif terakhir (end + 1 hari), atau hari
// ini kalau tidak ada periode yang masih berjalan.
func (ctrl *SubscriptionController) resolveStartDate(req dto.CreateSubscriptionRequest, memberID uuid.UUID) (time.Time, error) {
	if req.StartDate != nil {
		start, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "start_date harus format YYYY-MM-DD")
		}
		return start, nil
	}

	today := localMidnight(time.Now())

	var latest model.SubscriptionModel
	err := ctrl.DB.
		Where("subscription_member_id = ?", memberID).
		Order("subscription_end_date DESC").
		First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return today, nil
		}
		return time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca subscription terakhir")
	}
	if latest.SubscriptionEndDate.Before(today) {
		return today, nil
	}
	return latest.SubscriptionEndDate.AddDate(0, 0, 1), nil
}

// Truncate(24h) = tengah malam UTC, salah hari di WIB. Normalisasi tanggal
// selalu pakai midnight lokal.
func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

/* ===================== STATUS ===================== */
// GET /api/a/subscriptions/status/:member_id — status turunan dari tanggal
func (ctrl *SubscriptionController) Status(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "member_id tidak valid")
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}
	if !actor.CanAccessBranch(member.MemberBranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	status, sub, err := ctrl.Classifier.Classify(memberID, time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung status membership")
	}
	return helper.JsonOK(c, "Subscription status", fiber.Map{
		"member_id":    memberID,
		"status":       status,
		"subscription": sub,
	})
}

/* ===================== FREEZE / SET STATUS ===================== */
// PATCH /api/a/subscriptions/:id/status
// Satu-satunya jalur set "inactive" (override manual admin, misal freeze).
func (ctrl *SubscriptionController) SetStatus(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin/owner yang boleh mengubah status subscription")
	}

	subID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID subscription tidak valid")
	}

	var req dto.SetSubscriptionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.SubscriptionModel{}).
		Where("subscription_id = ?", subID).
		Update("subscription_status", req.Status)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui status")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subscription tidak ditemukan")
	}
	return helper.JsonOK(c, "Status subscription diperbarui", fiber.Map{
		"subscription_id": subID,
		"status":          req.Status,
	})
}

/* ===================== HISTORY ===================== */
// GET /api/a/subscriptions/member/:member_id
func (ctrl *SubscriptionController) History(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "member_id tidak valid")
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}
	if !actor.CanAccessBranch(member.MemberBranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	var subs []model.SubscriptionModel
	if err := ctrl.DB.
		Where("subscription_member_id = ?", memberID).
		Order("subscription_end_date DESC").
		Find(&subs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat subscription")
	}
	return helper.JsonOK(c, "Subscription history", subs)
}
