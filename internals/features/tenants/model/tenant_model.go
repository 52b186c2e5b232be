package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantModel struct {
	TenantID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tenant_id" json:"tenant_id"`
	TenantName string    `gorm:"not null;column:tenant_name" json:"tenant_name"`

	TenantIsActive bool `gorm:"not null;default:true;column:tenant_is_active" json:"tenant_is_active"`

	TenantCreatedAt time.Time      `gorm:"column:tenant_created_at;autoCreateTime" json:"tenant_created_at"`
	TenantUpdatedAt *time.Time     `gorm:"column:tenant_updated_at;autoUpdateTime" json:"tenant_updated_at,omitempty"`
	TenantDeletedAt gorm.DeletedAt `gorm:"column:tenant_deleted_at;index" json:"tenant_deleted_at,omitempty"`
}

func (TenantModel) TableName() string { return "tenants" }
