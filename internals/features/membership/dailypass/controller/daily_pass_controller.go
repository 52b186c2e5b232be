package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/membership/dailypass/model"
	paymentService "gymku_backend/internals/features/payments/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type DailyPassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDailyPassController(db *gorm.DB) *DailyPassController {
	return &DailyPassController{DB: db, Validate: validator.New()}
}

type createDailyPassRequest struct {
	BranchID uuid.UUID `json:"branch_id" validate:"required"`
	Name     string    `json:"name" validate:"required,min=2,max=100"`
	Phone    string    `json:"phone"`
	Amount   int64     `json:"amount" validate:"required,gt=0"`
}

// POST /api/a/daily-passes — tiket walk-in, berlaku hari ini saja
func (ctrl *DailyPassController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	var req createDailyPassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !actor.CanAccessBranch(req.BranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	orderID := fmt.Sprintf("DP-%s", uuid.NewString()[:8])
	pass := model.DailyPassModel{
		DailyPassBranchID:      req.BranchID,
		DailyPassName:          req.Name,
		DailyPassPhone:         helper.NormalizePhone(req.Phone),
		DailyPassDate:          localMidnight(time.Now()),
		DailyPassAmount:        req.Amount,
		DailyPassPaymentStatus: model.DailyPassPaymentPending,
		DailyPassOrderID:       &orderID,
	}
	if err := ctrl.DB.Create(&pass).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan daily pass")
	}

	snapToken, err := paymentService.GenerateSnapToken(orderID, req.Amount, req.Name, pass.DailyPassPhone)
	if err != nil {
		log.Printf("[WARNING] gagal generate snap token %s: %v", orderID, err)
	}

	return helper.JsonCreated(c, "Daily pass berhasil dibuat", fiber.Map{
		"daily_pass": pass,
		"snap_token": snapToken,
	})
}

// tanggal pass normalisasi ke midnight lokal, bukan Truncate (= midnight UTC)
func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PATCH /api/a/daily-passes/:id/paid — tandai lunas (cash / konfirmasi manual)
func (ctrl *DailyPassController) MarkPaid(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	passID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID daily pass tidak valid")
	}

	var pass model.DailyPassModel
	if err := ctrl.DB.First(&pass, "daily_pass_id = ?", passID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Daily pass tidak ditemukan")
	}
	if !actor.CanAccessBranch(pass.DailyPassBranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	if err := ctrl.DB.Model(&pass).
		Update("daily_pass_payment_status", model.DailyPassPaymentPaid).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui daily pass")
	}
	return helper.JsonOK(c, "Daily pass lunas", pass)
}

// GET /api/a/daily-passes?branch_id=&date=
func (ctrl *DailyPassController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.DailyPassModel{})
	if raw := c.Query("branch_id"); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
		}
		if !actor.CanAccessBranch(branchID) {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
		}
		q = q.Where("daily_pass_branch_id = ?", branchID)
	} else if !actor.AllBranches {
		q = q.Where("daily_pass_branch_id IN ?", actor.BranchScope)
	}

	date := time.Now().Format("2006-01-02")
	if raw := c.Query("date"); raw != "" {
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date harus format YYYY-MM-DD")
		}
		date = raw
	}
	q = q.Where("daily_pass_date = ?", date)

	var passes []model.DailyPassModel
	if err := q.Order("daily_pass_created_at DESC").Find(&passes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daily pass")
	}
	return helper.JsonOK(c, "Daily passes", passes)
}
