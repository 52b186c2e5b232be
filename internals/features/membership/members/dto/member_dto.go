package dto

import "github.com/google/uuid"

type CreateMemberRequest struct {
	BranchID uuid.UUID `json:"branch_id" form:"branch_id" validate:"required"`
	Name     string    `json:"name" form:"name" validate:"required,min=2,max=100"`
	Phone    string    `json:"phone" form:"phone" validate:"required,min=7,max=20"`
	Gender   *string   `json:"gender" form:"gender" validate:"omitempty,oneof=male female"`
}

type UpdateMemberRequest struct {
	Name   *string `json:"name" form:"name" validate:"omitempty,min=2,max=100"`
	Phone  *string `json:"phone" form:"phone" validate:"omitempty,min=7,max=20"`
	Gender *string `json:"gender" form:"gender" validate:"omitempty,oneof=male female"`
}
