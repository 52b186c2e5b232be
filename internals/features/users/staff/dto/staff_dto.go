package dto

import "github.com/google/uuid"

type CreateStaffRequest struct {
	FullName  string      `json:"full_name" validate:"required,min=2,max=100"`
	Email     string      `json:"email" validate:"required,email"`
	Phone     string      `json:"phone"`
	Password  string      `json:"password" validate:"required,min=8"`
	Role      string      `json:"role" validate:"required,oneof=admin staff"`
	BranchIDs []uuid.UUID `json:"branch_ids" validate:"required,min=1"`
}

type AssignBranchesRequest struct {
	BranchIDs []uuid.UUID `json:"branch_ids" validate:"required,min=1"`

	// index di BranchIDs yang jadi cabang utama; default 0
	PrimaryIndex *int `json:"primary_index" validate:"omitempty,gte=0"`
}
