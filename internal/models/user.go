package models

type Role string

const (
	RoleCandidate   Role = "Candidate"
	RoleInterviewer Role = "Interviewer"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleInterviewer
}

// User is the shared identity row; one per person regardless of the
// role-specific profile held in candidates/interviewers.
type User struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;not null" json:"name"`
	Email    string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password;not null" json:"-"`
	Role     Role   `gorm:"column:role;not null" json:"role"`
}

func (User) TableName() string { return "users" }
