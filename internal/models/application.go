package models

import "time"

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusRejected:
		return true
	}
	return false
}

// JobApplication links a candidate to a job post. One row per
// (candidate_email, job_id) pair, backed by the composite unique index.
type JobApplication struct {
	ID             uint `gorm:"column:id;primaryKey" json:"id"`
	CandidateEmail string `gorm:"column:candidate_email;not null;uniqueIndex:uq_applications_candidate_job" json:"candidate_email"`
	JobID          uint `gorm:"column:job_id;not null;uniqueIndex:uq_applications_candidate_job" json:"job_id"`

	InterviewerEmail string            `gorm:"column:interviewer_email;not null" json:"interviewer_email"`
	Status           ApplicationStatus `gorm:"column:status;default:Applied" json:"status"`

	InterviewFormURL     string     `gorm:"column:interview_form_url" json:"interview_form_url"`
	InterviewSchedule    *time.Time `gorm:"column:interview_schedule" json:"interview_schedule"`
	InterviewDuration    int        `gorm:"column:interview_duration" json:"interview_duration"`
	InterviewTitle       string     `gorm:"column:interview_title" json:"interview_title"`
	InterviewDescription string     `gorm:"column:interview_description;type:text" json:"interview_description"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (JobApplication) TableName() string { return "job_applications" }

// Note is interviewer commentary attached to an application. Only the
// application's interviewer_email may create, edit or delete one.
type Note struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	ApplicationID uint      `gorm:"column:application_id;not null;index" json:"application_id"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedBy     string    `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Note) TableName() string { return "notes" }
