package model

import (
	"time"

	"gorm.io/datatypes"
)

// PersonalAccessTokenModel satu baris per token yang diterbitkan.
// JWT hanya valid selama barisnya (token_id = claim jti) masih ada.
type PersonalAccessTokenModel struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	TokenID    string         `gorm:"type:varchar(64);not null;uniqueIndex" json:"token_id"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	Abilities  datatypes.JSON `json:"abilities"`
	LastUsedAt *time.Time     `json:"last_used_at"`
	ExpiresAt  time.Time      `gorm:"not null;index" json:"expires_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (PersonalAccessTokenModel) TableName() string {
	return "personal_access_tokens"
}
