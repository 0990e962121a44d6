package model

import (
	"time"

	"gorm.io/gorm"

	"quizapp_backend/internals/constants"
	"quizapp_backend/internals/helpers/storage"
)

type UserModel struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Name     string         `gorm:"type:varchar(255);not null" json:"name"`
	Email    string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password string         `gorm:"type:varchar(255);not null" json:"-"`
	Role     constants.Role `gorm:"type:varchar(10);not null;default:siswa" json:"role"`
	Avatar   *string        `gorm:"type:varchar(255)" json:"avatar"`
	Number   *int64         `gorm:"uniqueIndex" json:"number"`
	LastSeen *time.Time     `json:"last_seen"`

	AvatarURL string `gorm:"-" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) AfterFind(*gorm.DB) error {
	u.AvatarURL = storage.PublicURL(storage.DirAvatar, u.Avatar)
	return nil
}

func (u *UserModel) AfterCreate(tx *gorm.DB) error {
	return u.AfterFind(tx)
}
