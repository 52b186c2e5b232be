package dto

import "github.com/google/uuid"

type CreateTrainerRequest struct {
	BranchID    uuid.UUID `json:"branch_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Phone       string    `json:"phone"`
	MonthlyFee  int64     `json:"monthly_fee" validate:"required,gt=0"`
	Specialties []string  `json:"specialties"`
}

// Klien memilih opsi dengan label; fee & tanggal TIDAK diterima dari klien,
// server menghitung ulang plan dan mengambil opsi yang labelnya cocok.
type CreatePTSubscriptionRequest struct {
	MemberID    uuid.UUID `json:"member_id" validate:"required"`
	TrainerID   uuid.UUID `json:"trainer_id" validate:"required"`
	OptionLabel string    `json:"option_label" validate:"required"`
}
