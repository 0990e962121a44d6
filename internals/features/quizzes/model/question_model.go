package model

import (
	"time"

	"gorm.io/gorm"

	"quizapp_backend/internals/helpers/storage"
)

type QuestionModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	QuizID    uint      `gorm:"not null;index" json:"quiz_id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Image     *string   `gorm:"type:varchar(255)" json:"image"`
	ImageURL  string    `gorm:"-" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Options []OptionModel `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func (q *QuestionModel) AfterFind(*gorm.DB) error {
	q.ImageURL = storage.PublicURL(storage.DirQuiz, q.Image)
	return nil
}

type OptionModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Correct    int       `gorm:"not null;default:0" json:"correct"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (OptionModel) TableName() string {
	return "options"
}
