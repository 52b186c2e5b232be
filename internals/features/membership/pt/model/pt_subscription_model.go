package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PTSubscriptionStatusActive  = "active"
	PTSubscriptionStatusExpired = "expired"
)

// Periode PT seorang member dengan trainer tertentu.
// Window tidak boleh overlap: periode baru selalu mulai end_date lama + 1 hari
// (di-generate lewat planner, bukan input bebas dari klien).
type PTSubscriptionModel struct {
	PTSubscriptionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pt_subscription_id" json:"pt_subscription_id"`
	PTSubscriptionMemberID  uuid.UUID `gorm:"type:uuid;not null;index;column:pt_subscription_member_id" json:"pt_subscription_member_id"`
	PTSubscriptionTrainerID uuid.UUID `gorm:"type:uuid;not null;index;column:pt_subscription_trainer_id" json:"pt_subscription_trainer_id"`

	PTSubscriptionStartDate time.Time `gorm:"type:date;not null;column:pt_subscription_start_date" json:"pt_subscription_start_date"`
	PTSubscriptionEndDate   time.Time `gorm:"type:date;not null;index;column:pt_subscription_end_date" json:"pt_subscription_end_date"`

	PTSubscriptionDays int   `gorm:"not null;column:pt_subscription_days" json:"pt_subscription_days"`
	PTSubscriptionFee  int64 `gorm:"not null;column:pt_subscription_fee" json:"pt_subscription_fee"`

	PTSubscriptionStatus string `gorm:"not null;default:active;column:pt_subscription_status" json:"pt_subscription_status"`

	// order id midtrans untuk pembayaran fee (kalau pembayaran online dipakai)
	PTSubscriptionOrderID *string `gorm:"column:pt_subscription_order_id" json:"pt_subscription_order_id,omitempty"`

	PTSubscriptionCreatedAt time.Time  `gorm:"column:pt_subscription_created_at;autoCreateTime" json:"pt_subscription_created_at"`
	PTSubscriptionUpdatedAt *time.Time `gorm:"column:pt_subscription_updated_at;autoUpdateTime" json:"pt_subscription_updated_at,omitempty"`
}

func (PTSubscriptionModel) TableName() string { return "pt_subscriptions" }
