package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	authDTO "gymku_backend/internals/features/users/auth/dto"
	authModel "gymku_backend/internals/features/users/auth/model"
	staffModel "gymku_backend/internals/features/users/staff/model"
	helper "gymku_backend/internals/helpers"
)

const accessTTL = 12 * time.Hour

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var staff staffModel.StaffModel
	if err := db.Where("staff_email = ?", input.Email).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data staff")
	}
	if !staff.StaffIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.StaffPasswordHash), []byte(input.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueToken(c, staff)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	// Staff harus sudah terdaftar oleh admin; Google login tidak membuat akun baru.
	var staff staffModel.StaffModel
	if err := db.Where("staff_email = ?", strings.ToLower(claimSet.Email)).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email Google tidak terdaftar sebagai staff")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data staff")
	}
	if !staff.StaffIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueToken(c, staff)
}

/* ==========================
   LOGOUT → blacklist token
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := c.Get("Authorization")
	if !strings.HasPrefix(raw, "Bearer ") {
		return fiber.NewError(fiber.StatusBadRequest, "Missing bearer token")
	}
	tokenString := strings.TrimPrefix(raw, "Bearer ")

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(accessTTL),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Gagal blacklist token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   ISSUE TOKEN
========================== */

func issueToken(c *fiber.Ctx, staff staffModel.StaffModel) error {
	if configs.JWTSecret == "" {
		return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       staff.StaffID.String(),
		"user_id":   staff.StaffID.String(),
		"role":      staff.StaffRole,
		"tenant_id": staff.StaffTenantID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	// Staff biasa dibatasi ke cabang tugasnya; admin/owner scope-nya seluruh tenant.
	if staff.StaffRole == "staff" {
		claims["branch_ids"] = []string(staff.StaffBranchScope)
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	resp := authDTO.LoginResponse{
		User: authDTO.LoginResponseUser{
			StaffID:     staff.StaffID.String(),
			FullName:    staff.StaffFullName,
			Email:       staff.StaffEmail,
			Role:        staff.StaffRole,
			TenantID:    staff.StaffTenantID.String(),
			BranchScope: []string(staff.StaffBranchScope),
		},
		AccessToken: accessToken,
	}
	return helper.JsonOK(c, "Login berhasil", resp)
}
