package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/features/tenants/model"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type BranchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db, Validate: validator.New()}
}

type createBranchRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// POST /api/a/branches (owner)
func (ctrl *BranchController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	var req createBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	phone := req.Phone
	if phone != nil {
		normalized := helper.NormalizePhone(*phone)
		phone = &normalized
	}

	branch := model.BranchModel{
		BranchTenantID: actor.TenantID,
		BranchName:     req.Name,
		BranchAddress:  req.Address,
		BranchPhone:    phone,
		BranchIsActive: true,
	}
	if err := ctrl.DB.Create(&branch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan cabang")
	}
	return helper.JsonCreated(c, "Cabang berhasil dibuat", branch)
}

// GET /api/a/branches — cabang aktif dalam scope si actor
func (ctrl *BranchController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	q := ctrl.DB.
		Where("branch_tenant_id = ? AND branch_is_active = TRUE", actor.TenantID)
	if !actor.AllBranches {
		q = q.Where("branch_id IN ?", actor.BranchScope)
	}

	var branches []model.BranchModel
	if err := q.Order("branch_name ASC").Find(&branches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil cabang")
	}
	return helper.JsonOK(c, "Branches", branches)
}
