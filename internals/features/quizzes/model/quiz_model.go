package model

import "time"

type QuizType string

const (
	QuizTypeQuiz  QuizType = "quiz"
	QuizTypeEssay QuizType = "essay"
)

func (t QuizType) Valid() bool {
	return t == QuizTypeQuiz || t == QuizTypeEssay
}

// HasOptions hanya soal pilihan ganda yang punya opsi.
func (t QuizType) HasOptions() bool {
	return t == QuizTypeQuiz
}

type QuizModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Type      QuizType  `gorm:"type:varchar(10);not null;index" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Questions []QuestionModel `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
