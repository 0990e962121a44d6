package model

import "time"

type MateriModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Subject     string    `gorm:"type:varchar(255);not null" json:"subject"`
	Competence  string    `gorm:"type:text" json:"competence"`
	Class       string    `gorm:"column:class;type:varchar(50);index" json:"class"`
	Semester    string    `gorm:"type:varchar(20);index" json:"semester"`
	Meet        string    `gorm:"type:varchar(50)" json:"meet"`
	Description string    `gorm:"type:text" json:"description"`
	ImageBanner *string   `gorm:"type:varchar(255)" json:"image_banner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MateriModel) TableName() string {
	return "materis"
}
