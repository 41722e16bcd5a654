package models

import "time"

type JobPost struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Title    string `gorm:"column:title;not null" json:"title"`
	Company  string `gorm:"column:company;not null" json:"company"`
	Location string `gorm:"column:location;not null" json:"location"`
	Type     string `gorm:"column:type;not null" json:"type"`
	Salary   string `gorm:"column:salary;not null" json:"salary"`

	Description string `gorm:"column:description;type:text;not null" json:"description"`
	Skills      string `gorm:"column:skills;type:text;not null" json:"skills"`

	// soft reference, not a foreign key
	InterviewerEmail string `gorm:"column:interviewer_email;not null" json:"interviewer_email"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (JobPost) TableName() string { return "job_posts" }

// SavedJob is a candidate's wishlist entry. The composite unique index backs
// the one-save-per-(candidate,job) invariant.
type SavedJob struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	CandidateEmail string    `gorm:"column:candidate_email;not null;uniqueIndex:uq_saved_jobs_candidate_job" json:"candidate_email"`
	JobID          uint      `gorm:"column:job_id;not null;uniqueIndex:uq_saved_jobs_candidate_job" json:"job_id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SavedJob) TableName() string { return "saved_jobs" }
