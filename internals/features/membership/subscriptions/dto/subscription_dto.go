package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreatePackageRequest struct {
	Name         string         `json:"name" validate:"required,min=2,max=100"`
	Price        int64          `json:"price" validate:"required,gt=0"`
	DurationDays int            `json:"duration_days" validate:"required,gt=0"`
	Features     datatypes.JSON `json:"features,omitempty"`
}

// Start date opsional: default melanjutkan periode aktif (end lama + 1 hari)
// atau hari ini kalau tidak ada periode berjalan.
type CreateSubscriptionRequest struct {
	MemberID  uuid.UUID  `json:"member_id" validate:"required"`
	PackageID *uuid.UUID `json:"package_id"`
	StartDate *string    `json:"start_date" validate:"omitempty,datetime=2006-01-02"`

	// dipakai kalau tanpa package (harga/durasi manual)
	DurationDays *int   `json:"duration_days" validate:"omitempty,gt=0"`
	Price        *int64 `json:"price" validate:"omitempty,gte=0"`
}

type SetSubscriptionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive expired"`
}
