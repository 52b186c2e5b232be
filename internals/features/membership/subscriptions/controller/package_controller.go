package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/membership/subscriptions/dto"
	"gymku_backend/internals/features/membership/subscriptions/model"
	helper "gymku_backend/internals/helpers"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type PackageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{DB: db, Validate: validator.New()}
}

// POST /api/a/packages (admin/owner)
func (ctrl *PackageController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin/owner yang boleh membuat paket")
	}

	var req dto.CreatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	pkg := model.PackageModel{
		PackageTenantID:     actor.TenantID,
		PackageName:         req.Name,
		PackagePrice:        req.Price,
		PackageDurationDays: req.DurationDays,
		PackageFeatures:     req.Features,
		PackageIsActive:     true,
	}
	if err := ctrl.DB.Create(&pkg).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan paket")
	}
	return helper.JsonCreated(c, "Paket berhasil dibuat", pkg)
}

// GET /api/a/packages
func (ctrl *PackageController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}

	var pkgs []model.PackageModel
	if err := ctrl.DB.
		Where("package_tenant_id = ? AND package_is_active = TRUE", actor.TenantID).
		Order("package_price ASC").
		Find(&pkgs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil paket")
	}
	return helper.JsonOK(c, "Packages", pkgs)
}

// DELETE /api/a/packages/:id — soft delete + nonaktif, subscription lama
// yang menunjuk paket ini tidak tersentuh.
func (ctrl *PackageController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.ResolveStaffOrAdmin(c, ctrl.DB)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin/owner yang boleh menghapus paket")
	}

	pkgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID paket tidak valid")
	}

	res := ctrl.DB.Model(&model.PackageModel{}).
		Where("package_id = ? AND package_tenant_id = ?", pkgID, actor.TenantID).
		Update("package_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus paket")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&model.PackageModel{}, "package_id = ?", pkgID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus paket")
	}
	return helper.JsonOK(c, "Paket berhasil dihapus", nil)
}
