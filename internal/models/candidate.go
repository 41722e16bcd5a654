package models

import "time"

type Education string

const (
	EducationNotSpecified Education = "Not Specified"
	EducationMatric       Education = "MATRIC"
	EducationIntermediate Education = "INTERMEDIATE"
	EducationBachelors    Education = "Bachelor's"
	EducationMaster       Education = "Master"
	EducationPHD          Education = "PHD"
)

const DefaultProfileImage = "/images/user.jpg"

type Candidate struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	Name  string `gorm:"column:name;not null" json:"name"`
	Email string `gorm:"column:email;uniqueIndex;not null" json:"email"`

	// free-text comma list, ex: "Python, SQL"
	Skills string `gorm:"column:skills;type:text;not null" json:"skills"`

	Resume       string `gorm:"column:resume;not null" json:"resume"`
	ProfileImage string `gorm:"column:profile_image;default:/images/user.jpg" json:"profile_image"`
	Bio          string `gorm:"column:bio;type:text" json:"bio"`

	Education         Education `gorm:"column:education;not null;default:Not Specified" json:"education"`
	YearsOfExperience int       `gorm:"column:years_of_experience;default:0" json:"years_of_experience"`

	Role      Role      `gorm:"column:role;not null;default:Candidate" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Candidate) TableName() string { return "candidates" }
