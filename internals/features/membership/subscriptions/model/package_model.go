package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PackageModel struct {
	PackageID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:package_id" json:"package_id"`
	PackageTenantID uuid.UUID `gorm:"type:uuid;not null;index;column:package_tenant_id" json:"package_tenant_id"`

	PackageName         string `gorm:"not null;column:package_name" json:"package_name"`
	PackagePrice        int64  `gorm:"not null;column:package_price" json:"package_price"`
	PackageDurationDays int    `gorm:"not null;column:package_duration_days" json:"package_duration_days"`

	// daftar fasilitas paket, bebas bentuk (["sauna","group class",...])
	PackageFeatures datatypes.JSON `gorm:"column:package_features" json:"package_features,omitempty"`

	PackageIsActive bool `gorm:"not null;default:true;column:package_is_active" json:"package_is_active"`

	PackageCreatedAt time.Time      `gorm:"column:package_created_at;autoCreateTime" json:"package_created_at"`
	PackageUpdatedAt *time.Time     `gorm:"column:package_updated_at;autoUpdateTime" json:"package_updated_at,omitempty"`
	PackageDeletedAt gorm.DeletedAt `gorm:"column:package_deleted_at;index" json:"package_deleted_at,omitempty"`
}

func (PackageModel) TableName() string { return "packages" }
