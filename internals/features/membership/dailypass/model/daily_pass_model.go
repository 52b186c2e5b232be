package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DailyPassPaymentPending = "pending"
	DailyPassPaymentPaid    = "paid"
)

// Tiket harian untuk pengunjung walk-in (tanpa membership).
type DailyPassModel struct {
	DailyPassID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:daily_pass_id" json:"daily_pass_id"`
	DailyPassBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:daily_pass_branch_id" json:"daily_pass_branch_id"`

	DailyPassName  string `gorm:"not null;column:daily_pass_name" json:"daily_pass_name"`
	DailyPassPhone string `gorm:"column:daily_pass_phone" json:"daily_pass_phone"`

	DailyPassDate   time.Time `gorm:"type:date;not null;index;column:daily_pass_date" json:"daily_pass_date"`
	DailyPassAmount int64     `gorm:"not null;column:daily_pass_amount" json:"daily_pass_amount"`

	DailyPassPaymentStatus string  `gorm:"not null;default:pending;column:daily_pass_payment_status" json:"daily_pass_payment_status"`
	DailyPassOrderID       *string `gorm:"column:daily_pass_order_id" json:"daily_pass_order_id,omitempty"`

	DailyPassCreatedAt time.Time `gorm:"column:daily_pass_created_at;autoCreateTime" json:"daily_pass_created_at"`
}

func (DailyPassModel) TableName() string { return "daily_passes" }
