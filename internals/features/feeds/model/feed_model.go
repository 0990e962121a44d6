package model

import (
	"time"

	"gorm.io/gorm"

	"quizapp_backend/internals/helpers/storage"
)

// Author tampilan ringkas user pada feed & balasan.
type Author struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (Author) TableName() string {
	return "users"
}

type FeedModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Image     *string   `gorm:"type:varchar(255)" json:"image"`
	ImageURL  string    `gorm:"-" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    *Author          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Replies []FeedReplyModel `gorm:"foreignKey:FeedID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}

func (FeedModel) TableName() string {
	return "feeds"
}

func (f *FeedModel) AfterFind(*gorm.DB) error {
	f.ImageURL = storage.PublicURL(storage.DirFeed, f.Image)
	return nil
}

type FeedReplyModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FeedID    uint      `gorm:"not null;index" json:"feed_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Image     *string   `gorm:"type:varchar(255)" json:"image"`
	ImageURL  string    `gorm:"-" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *Author `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (FeedReplyModel) TableName() string {
	return "feed_replies"
}

func (r *FeedReplyModel) AfterFind(*gorm.DB) error {
	r.ImageURL = storage.PublicURL(storage.DirFeed, r.Image)
	return nil
}
