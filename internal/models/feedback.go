package models

import "time"

type Feedback struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserEmail string    `gorm:"column:user_email;not null" json:"user_email"`
	UserName  string    `gorm:"column:user_name;not null" json:"user_name"`
	UserRole  string    `gorm:"column:user_role;not null" json:"user_role"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Feedback) TableName() string { return "feedback" }
