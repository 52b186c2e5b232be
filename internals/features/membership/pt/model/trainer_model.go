package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TrainerModel struct {
	TrainerID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:trainer_id" json:"trainer_id"`
	TrainerBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:trainer_branch_id" json:"trainer_branch_id"`

	TrainerName  string `gorm:"not null;column:trainer_name" json:"trainer_name"`
	TrainerPhone string `gorm:"column:trainer_phone" json:"trainer_phone"`

	// tarif PT per bulan; proration harian = fee/30 (lihat planner)
	TrainerMonthlyFee int64 `gorm:"not null;column:trainer_monthly_fee" json:"trainer_monthly_fee"`

	TrainerSpecialties pq.StringArray `gorm:"type:text[];column:trainer_specialties" json:"trainer_specialties"`

	TrainerIsActive bool `gorm:"not null;default:true;column:trainer_is_active" json:"trainer_is_active"`

	TrainerCreatedAt time.Time      `gorm:"column:trainer_created_at;autoCreateTime" json:"trainer_created_at"`
	TrainerUpdatedAt *time.Time     `gorm:"column:trainer_updated_at;autoUpdateTime" json:"trainer_updated_at,omitempty"`
	TrainerDeletedAt gorm.DeletedAt `gorm:"column:trainer_deleted_at;index" json:"trainer_deleted_at,omitempty"`
}

func (TrainerModel) TableName() string { return "trainers" }
