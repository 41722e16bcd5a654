package models

import "time"

type Interviewer struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	Name  string `gorm:"column:name;not null" json:"name"`
	Email string `gorm:"column:email;uniqueIndex;not null" json:"email"`

	Expertise    string `gorm:"column:expertise;type:text;not null" json:"expertise"`
	Availability string `gorm:"column:availability;type:text;not null" json:"availability"`
	Department   string `gorm:"column:department;not null" json:"department"`

	Role      Role      `gorm:"column:role;not null;default:Interviewer" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Interviewer) TableName() string { return "interviewers" }
