package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

// SearchFilter narrows the application search. Status and Search are
// optional; Offset/Limit page the filtered set.
type SearchFilter struct {
	Status models.ApplicationStatus
	Search string
	Offset int
	Limit  int
}

// SearchRow is an application joined with its candidate and job post.
type SearchRow struct {
	ApplicationID        uint                     `json:"application_id"`
	JobID                uint                     `json:"job_id"`
	JobTitle             string                   `json:"job_title"`
	Company              string                   `json:"company"`
	CandidateName        string                   `json:"candidate_name"`
	CandidateEmail       string                   `json:"candidate_email"`
	InterviewerEmail     string                   `json:"interviewer_email"`
	Status               models.ApplicationStatus `json:"status"`
	InterviewFormURL     string                   `json:"interview_form_url"`
	InterviewSchedule    *time.Time               `json:"interview_schedule"`
	InterviewDuration    int                      `json:"interview_duration"`
	InterviewTitle       string                   `json:"interview_title"`
	InterviewDescription string                   `json:"interview_description"`
	CreatedAt            time.Time                `json:"created_at"`
}

// InterviewerRow is the pipeline view an interviewer sees: the application
// plus the candidate's profile fields.
type InterviewerRow struct {
	ApplicationID        uint                     `json:"application_id"`
	JobID                uint                     `json:"job_id"`
	JobTitle             string                   `json:"job_title"`
	Company              string                   `json:"company"`
	CandidateID          uint                     `json:"candidate_id"`
	CandidateName        string                   `json:"candidate_name"`
	CandidateEmail       string                   `json:"candidate_email"`
	Education            models.Education         `json:"education"`
	YearsOfExperience    int                      `json:"years_of_experience"`
	Skills               string                   `json:"skills"`
	Resume               string                   `json:"resume"`
	ProfileImage         string                   `json:"profile_image"`
	Status               models.ApplicationStatus `json:"status"`
	InterviewFormURL     string                   `json:"interview_form_url"`
	InterviewSchedule    *time.Time               `json:"interview_schedule"`
	InterviewDuration    int                      `json:"interview_duration"`
	InterviewTitle       string                   `json:"interview_title"`
	InterviewDescription string                   `json:"interview_description"`
	CreatedAt            time.Time                `json:"created_at"`
}

// CandidateRow is a candidate's own application with the job fields inlined.
type CandidateRow struct {
	ApplicationID        uint                     `json:"application_id"`
	JobID                uint                     `json:"job_id"`
	JobTitle             string                   `json:"job_title"`
	Company              string                   `json:"company"`
	Location             string                   `json:"location"`
	Type                 string                   `json:"type"`
	Status               models.ApplicationStatus `json:"status"`
	InterviewFormURL     string                   `json:"interview_form_url"`
	InterviewSchedule    *time.Time               `json:"interview_schedule"`
	InterviewDuration    int                      `json:"interview_duration"`
	InterviewTitle       string                   `json:"interview_title"`
	InterviewDescription string                   `json:"interview_description"`
	AppliedDate          time.Time                `json:"applied_date"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.JobApplication) error
	GetByID(ctx context.Context, id uint) (*models.JobApplication, error)
	GetByPair(ctx context.Context, candidateEmail string, jobID uint) (*models.JobApplication, error)
	CountByCandidate(ctx context.Context, candidateEmail string) (int64, error)
	ListByInterviewer(ctx context.Context, email string) ([]InterviewerRow, error)
	ListByCandidate(ctx context.Context, email string) ([]CandidateRow, error)
	Search(ctx context.Context, f SearchFilter) ([]SearchRow, int64, error)
	Save(ctx context.Context, a *models.JobApplication) error
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, a *models.JobApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepo) GetByID(ctx context.Context, id uint) (*models.JobApplication, error) {
	var a models.JobApplication
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) GetByPair(ctx context.Context, candidateEmail string, jobID uint) (*models.JobApplication, error) {
	var a models.JobApplication
	err := r.db.WithContext(ctx).
		Where("candidate_email = ? AND job_id = ?", candidateEmail, jobID).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) CountByCandidate(ctx context.Context, candidateEmail string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("candidate_email = ?", candidateEmail).
		Count(&count).Error
	return count, err
}

func (r *applicationRepo) ListByInterviewer(ctx context.Context, email string) ([]InterviewerRow, error) {
	var rows []InterviewerRow
	err := r.db.WithContext(ctx).
		Table("job_applications AS a").
		Select(`a.id AS application_id, j.id AS job_id, j.title AS job_title, j.company,
			c.id AS candidate_id, c.name AS candidate_name, a.candidate_email,
			c.education, c.years_of_experience, c.skills, c.resume, c.profile_image,
			a.status, a.interview_form_url, a.interview_schedule, a.interview_duration,
			a.interview_title, a.interview_description, a.created_at`).
		Joins("JOIN candidates c ON c.email = a.candidate_email").
		Joins("JOIN job_posts j ON j.id = a.job_id").
		Where("a.interviewer_email = ?", email).
		Scan(&rows).Error
	return rows, err
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, email string) ([]CandidateRow, error) {
	var rows []CandidateRow
	err := r.db.WithContext(ctx).
		Table("job_applications AS a").
		Select(`a.id AS application_id, j.id AS job_id, j.title AS job_title, j.company,
			j.location, j.type, a.status, a.interview_form_url, a.interview_schedule,
			a.interview_duration, a.interview_title, a.interview_description,
			a.created_at AS applied_date`).
		Joins("JOIN job_posts j ON j.id = a.job_id").
		Where("a.candidate_email = ?", email).
		Scan(&rows).Error
	return rows, err
}

func (r *applicationRepo) searchQuery(ctx context.Context, f SearchFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("job_applications AS a").
		Joins("JOIN candidates c ON c.email = a.candidate_email").
		Joins("JOIN job_posts j ON j.id = a.job_id")
	if f.Status != "" {
		q = q.Where("a.status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		term := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(c.name) LIKE ? OR LOWER(j.title) LIKE ? OR LOWER(j.company) LIKE ?",
			term, term, term)
	}
	return q
}

func (r *applicationRepo) Search(ctx context.Context, f SearchFilter) ([]SearchRow, int64, error) {
	var total int64
	if err := r.searchQuery(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []SearchRow
	err := r.searchQuery(ctx, f).
		Select(`a.id AS application_id, j.id AS job_id, j.title AS job_title, j.company,
			c.name AS candidate_name, a.candidate_email, a.interviewer_email, a.status,
			a.interview_form_url, a.interview_schedule, a.interview_duration,
			a.interview_title, a.interview_description, a.created_at`).
		Order("a.created_at DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Scan(&rows).Error
	return rows, total, err
}

func (r *applicationRepo) Save(ctx context.Context, a *models.JobApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}
