package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "gymku_backend/internals/features/users/auth/service"
	staffModel "gymku_backend/internals/features/users/staff/model"
	helper "gymku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctrl.DB, c)
}

// POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctrl.DB, c)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctrl.DB, c)
}

// GET /api/auth/me — profil staff dari token
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	staffID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var staff staffModel.StaffModel
	if err := ctrl.DB.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Staff tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", staff)
}
