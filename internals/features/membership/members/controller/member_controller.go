package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/membership/members/dto"
	"gymku_backend/internals/features/membership/members/model"
	subService "gymku_backend/internals/features/membership/subscriptions/service"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
	helperOSS "gymku_backend/internals/helpers/oss"
)

type MemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/a/members — multipart (dengan foto) atau JSON biasa
func (ctrl *MemberController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !actor.CanAccessBranch(req.BranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	phone := helper.NormalizePhone(req.Phone)
	if phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor HP tidak valid")
	}

	// Nomor HP unik per cabang (ada unique index juga sebagai pagar terakhir)
	var count int64
	if err := ctrl.DB.Model(&model.MemberModel{}).
		Where("member_branch_id = ? AND member_phone = ?", req.BranchID, phone).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa nomor HP")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Nomor HP sudah terdaftar di cabang ini")
	}

	member := model.MemberModel{
		MemberBranchID: req.BranchID,
		MemberName:     req.Name,
		MemberPhone:    phone,
		MemberGender:   req.Gender,
	}

	if url := ctrl.uploadPhotoIfAny(c); url != "" {
		member.MemberPhotoURL = &url
	}

	if err := ctrl.DB.Create(&member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan member")
	}
	return helper.JsonCreated(c, "Member berhasil dibuat", member)
}

/* ===================== LIST (paginated + search) ===================== */
// GET /api/a/members?branch_id=&search=&page=&per_page=
func (ctrl *MemberController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.MemberModel{})

	if raw := c.Query("branch_id"); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
		}
		if !actor.CanAccessBranch(branchID) {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
		}
		q = q.Where("member_branch_id = ?", branchID)
	} else if !actor.AllBranches {
		if len(actor.BranchScope) == 0 {
			return fiber.NewError(fiber.StatusForbidden, "Tidak ada cabang yang bisa diakses")
		}
		q = q.Where("member_branch_id IN ?", actor.BranchScope)
	}

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("member_name ILIKE ? OR member_phone LIKE ?", like, "%"+helper.NormalizePhone(search)+"%")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung member")
	}

	var members []model.MemberModel
	if err := q.Order("member_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}

	return helper.JsonList(c, "Members", members, helper.BuildPagination(total, paging, len(members)))
}

/* ===================== DETAIL (+ status membership) ===================== */
// GET /api/a/members/:id
func (ctrl *MemberController) GetByID(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID member tidak valid")
	}

	var member model.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}
	if !actor.CanAccessBranch(member.MemberBranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	status, sub, err := subService.NewClassifier(ctrl.DB).Classify(member.MemberID, time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung status membership")
	}

	return helper.JsonOK(c, "Member detail", fiber.Map{
		"member":              member,
		"subscription_status": status,
		"subscription":        sub,
	})
}

/* ===================== UPDATE ===================== */
// PUT /api/a/members/:id — field opsional; foto baru via multipart "photo"
func (ctrl *MemberController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID member tidak valid")
	}

	var member model.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}
	if !actor.CanAccessBranch(member.MemberBranchID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak ditugaskan di cabang ini")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		member.MemberName = *req.Name
	}
	if req.Phone != nil {
		phone := helper.NormalizePhone(*req.Phone)
		if phone == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nomor HP tidak valid")
		}
		member.MemberPhone = phone
	}
	if req.Gender != nil {
		member.MemberGender = req.Gender
	}
	if url := ctrl.uploadPhotoIfAny(c); url != "" {
		member.MemberPhotoURL = &url
	}

	if err := ctrl.DB.Save(&member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui member")
	}
	return helper.JsonOK(c, "Member berhasil diperbarui", member)
}

// uploadPhotoIfAny konversi ke webp lalu upload ke OSS. Gagal upload tidak
// menggagalkan create/update member — foto bukan data kritikal.
func (ctrl *MemberController) uploadPhotoIfAny(c *fiber.Ctx) string {
	fileHeader, err := c.FormFile("photo")
	if err != nil || fileHeader == nil {
		return ""
	}

	webpBytes, err := helper.ConvertToWebP(fileHeader)
	if err != nil {
		log.Printf("[WARNING] konversi foto member gagal: %v", err)
		return ""
	}
	url, err := helperOSS.UploadBytes("members", ".webp", webpBytes)
	if err != nil {
		log.Printf("[WARNING] upload foto member gagal: %v", err)
		return ""
	}
	return url
}
