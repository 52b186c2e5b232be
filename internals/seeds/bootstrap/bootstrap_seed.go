package bootstrap

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	tenantModel "gymku_backend/internals/features/tenants/model"
	staffModel "gymku_backend/internals/features/users/staff/model"
	helper "gymku_backend/internals/helpers"
)

type BootstrapSeed struct {
	TenantName string `json:"tenant_name"`
	Branches   []struct {
		Name    string  `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
	} `json:"branches"`
	Owner struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	} `json:"owner"`
}

// SeedBootstrapFromJSON membuat tenant + cabang + akun owner awal.
// Idempoten: kalau tenant dengan nama sama sudah ada, seed dilewati.
func SeedBootstrapFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seed BootstrapSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	var count int64
	if err := db.Model(&tenantModel.TenantModel{}).
		Where("tenant_name = ?", seed.TenantName).
		Count(&count).Error; err != nil {
		log.Fatalf("❌ Gagal cek tenant: %v", err)
	}
	if count > 0 {
		log.Printf("⏩ Tenant %q sudah ada, seed dilewati", seed.TenantName)
		return
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		tenant := tenantModel.TenantModel{
			TenantName:     seed.TenantName,
			TenantIsActive: true,
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		branchScope := pq.StringArray{}
		for _, b := range seed.Branches {
			phone := b.Phone
			if phone != nil {
				normalized := helper.NormalizePhone(*phone)
				phone = &normalized
			}
			branch := tenantModel.BranchModel{
				BranchTenantID: tenant.TenantID,
				BranchName:     b.Name,
				BranchAddress:  b.Address,
				BranchPhone:    phone,
				BranchIsActive: true,
			}
			if err := tx.Create(&branch).Error; err != nil {
				return err
			}
			branchScope = append(branchScope, branch.BranchID.String())
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Owner.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		owner := staffModel.StaffModel{
			StaffTenantID:     tenant.TenantID,
			StaffFullName:     seed.Owner.FullName,
			StaffEmail:        seed.Owner.Email,
			StaffPhone:        helper.NormalizePhone(seed.Owner.Phone),
			StaffPasswordHash: string(hash),
			StaffRole:         "owner",
			StaffIsActive:     true,
			StaffBranchScope:  branchScope,
		}
		return tx.Create(&owner).Error
	}); err != nil {
		log.Fatalf("❌ Gagal seed bootstrap: %v", err)
	}

	log.Printf("✅ Seed selesai: tenant %q dengan %d cabang", seed.TenantName, len(seed.Branches))
}
