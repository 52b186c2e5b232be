package model

import (
	"time"

	"github.com/google/uuid"
)

// Status tersimpan. Untuk gating check-in, tanggal tetap jadi ground truth;
// status tersimpan hanya dipercaya untuk override "inactive" (lihat service).
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusInactive = "inactive"
	SubscriptionStatusExpired  = "expired"
)

// Satu baris per periode berlangganan. History tidak pernah dihapus;
// baris dengan end_date paling akhir yang otoritatif untuk status "sekarang".
type SubscriptionModel struct {
	SubscriptionID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subscription_id" json:"subscription_id"`
	SubscriptionMemberID  uuid.UUID  `gorm:"type:uuid;not null;index;column:subscription_member_id" json:"subscription_member_id"`
	SubscriptionPackageID *uuid.UUID `gorm:"type:uuid;column:subscription_package_id" json:"subscription_package_id,omitempty"`

	SubscriptionStartDate time.Time `gorm:"type:date;not null;column:subscription_start_date" json:"subscription_start_date"`
	SubscriptionEndDate   time.Time `gorm:"type:date;not null;index;column:subscription_end_date" json:"subscription_end_date"`

	SubscriptionStatus string `gorm:"not null;default:active;column:subscription_status" json:"subscription_status"`
	SubscriptionPrice  int64  `gorm:"not null;default:0;column:subscription_price" json:"subscription_price"`

	SubscriptionCreatedAt time.Time  `gorm:"column:subscription_created_at;autoCreateTime" json:"subscription_created_at"`
	SubscriptionUpdatedAt *time.Time `gorm:"column:subscription_updated_at;autoUpdateTime" json:"subscription_updated_at,omitempty"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }
