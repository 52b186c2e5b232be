package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "gymku_backend/internals/features/membership/members/model"
	"gymku_backend/internals/features/membership/pt/dto"
	"gymku_backend/internals/features/membership/pt/model"
	"gymku_backend/internals/features/membership/pt/service"
	subService "gymku_backend/internals/features/membership/subscriptions/service"
	paymentService "gymku_backend/internals/features/payments/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type PTController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPTController(db *gorm.DB) *PTController {
	return &PTController{DB: db, Validate: validator.New()}
}

/* ===================== TRAINERS ===================== */

// POST /api/a/trainers (admin/owner)
func (ctrl *PTController) CreateTrainer(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin/owner yang boleh menambah trainer")
	}

	var req dto.CreateTrainerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !actor.CanAccessBranch(req.BranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	trainer := model.TrainerModel{
		TrainerBranchID:    req.BranchID,
		TrainerName:        req.Name,
		TrainerPhone:       helper.NormalizePhone(req.Phone),
		TrainerMonthlyFee:  req.MonthlyFee,
		TrainerSpecialties: req.Specialties,
		TrainerIsActive:    true,
	}
	if err := ctrl.DB.Create(&trainer).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan trainer")
	}
	return helper.JsonCreated(c, "Trainer berhasil dibuat", trainer)
}

// GET /api/a/trainers?branch_id=
func (ctrl *PTController) ListTrainers(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("trainer_is_active = TRUE")
	if raw := c.Query("branch_id"); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
		}
		if !actor.CanAccessBranch(branchID) {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
		}
		q = q.Where("trainer_branch_id = ?", branchID)
	} else if !actor.AllBranches {
		q = q.Where("trainer_branch_id IN ?", actor.BranchScope)
	}

	var trainers []model.TrainerModel
	if err := q.Order("trainer_name ASC").Find(&trainers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil trainer")
	}
	return helper.JsonOK(c, "Trainers", trainers)
}

/* ===================== PLAN (quote durasi + fee) ===================== */
// GET /api/a/pt/plan?member_id=&trainer_id=
func (ctrl *PTController) Plan(c *fiber.Ctx) error {
	if _, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB); err != nil {
		return err
	}

	memberID, err := uuid.Parse(c.Query("member_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "member_id tidak valid")
	}
	trainerID, err := uuid.Parse(c.Query("trainer_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "trainer_id tidak valid")
	}

	quote, err := ctrl.buildQuote(memberID, trainerID, time.Now())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "PT duration options", quote)
}

/* ===================== SUBSCRIBE ===================== */
// POST /api/a/pt/subscriptions — fee TIDAK dipercaya dari klien; plan
// dihitung ulang dan opsi dicocokkan berdasarkan label.
func (ctrl *PTController) Subscribe(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	var req dto.CreatePTSubscriptionRequest
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

	quote, err := ctrl.buildQuote(req.MemberID, req.TrainerID, time.Now())
	if err != nil {
		return err
	}

	var chosen *service.DurationOption
	for i := range quote.Options {
		if quote.Options[i].Label == req.OptionLabel {
			chosen = &quote.Options[i]
			break
		}
	}
	if chosen == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Opsi durasi tidak dikenal")
	}
	if !chosen.IsValid {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Durasi melewati akhir membership. Perpanjang membership dulu atau pilih durasi lebih pendek.")
	}

	orderID := fmt.Sprintf("PT-%s", uuid.NewString()[:8])
	sub := model.PTSubscriptionModel{
		PTSubscriptionMemberID:  req.MemberID,
		PTSubscriptionTrainerID: req.TrainerID,
		PTSubscriptionStartDate: quote.StartDate,
		PTSubscriptionEndDate:   chosen.EndDate,
		PTSubscriptionDays:      chosen.Days,
		PTSubscriptionFee:       chosen.Fee,
		PTSubscriptionStatus:    model.PTSubscriptionStatusActive,
		PTSubscriptionOrderID:   &orderID,
	}
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan PT subscription")
	}

	// Snap token best-effort: pembayaran bisa juga cash di front desk
	snapToken, err := paymentService.GenerateSnapToken(orderID, chosen.Fee, member.MemberName, member.MemberPhone)
	if err != nil {
		log.Printf("[WARNING] gagal generate snap token %s: %v", orderID, err)
	}

	return helper.JsonCreated(c, "PT subscription berhasil dibuat", fiber.Map{
		"pt_subscription": sub,
		"snap_token":      snapToken,
	})
}

type ptQuote struct {
	StartDate time.Time                `json:"start_date"`
	Options   []service.DurationOption `json:"options"`
	Trainer   *model.TrainerModel      `json:"trainer,omitempty"`
}

func (ctrl *PTController) buildQuote(memberID, trainerID uuid.UUID, now time.Time) (*ptQuote, error) {
	var trainer model.TrainerModel
	if err := ctrl.DB.First(&trainer, "trainer_id = ? AND trainer_is_active = TRUE", trainerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Trainer tidak ditemukan atau nonaktif")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil trainer")
	}

	status, membership, err := subService.NewClassifier(ctrl.DB).Classify(memberID, now)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung status membership")
	}
	if membership == nil || status.Blocks() {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			"Member tidak punya membership aktif. PT hanya bisa untuk member aktif.")
	}

	var existingPTEnd *time.Time
	var lastPT model.PTSubscriptionModel
	err = ctrl.DB.
		Where("pt_subscription_member_id = ? AND pt_subscription_end_date >= ?", memberID, service.ChainCutoff(now)).
		Order("pt_subscription_end_date DESC").
		First(&lastPT).Error
	if err == nil {
		existingPTEnd = &lastPT.PTSubscriptionEndDate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca PT berjalan")
	}

	memStart := membership.SubscriptionStartDate
	options := service.Plan(existingPTEnd, &memStart, membership.SubscriptionEndDate, trainer.TrainerMonthlyFee, now)
	if len(service.ValidOptions(options)) == 0 {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			"Sisa membership terlalu pendek untuk window PT baru. Perpanjang membership dulu.")
	}

	return &ptQuote{
		StartDate: service.PlanStart(existingPTEnd, &memStart, now),
		Options:   options,
		Trainer:   &trainer,
	}, nil
}
