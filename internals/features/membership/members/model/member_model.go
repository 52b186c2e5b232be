package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`
	MemberBranchID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_members_phone_branch;column:member_branch_id" json:"member_branch_id"`

	MemberName string `gorm:"not null;column:member_name" json:"member_name"`

	// Disimpan ternormalisasi (helper.NormalizePhone). Unik per cabang.
	MemberPhone string `gorm:"not null;uniqueIndex:uq_members_phone_branch;column:member_phone" json:"member_phone"`

	MemberPhotoURL *string `gorm:"column:member_photo_url" json:"member_photo_url,omitempty"`
	MemberGender   *string `gorm:"column:member_gender" json:"member_gender,omitempty"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
