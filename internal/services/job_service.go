package services

import (
	"context"
	"errors"

	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type JobPostInput struct {
	Title            string
	Company          string
	Location         string
	Type             string
	Salary           string
	Description      string
	Skills           string
	InterviewerEmail string
}

type JobService interface {
	Create(ctx context.Context, in JobPostInput) (*models.JobPost, error)
	Get(ctx context.Context, id uint) (*models.JobPost, error)
	List(ctx context.Context) ([]models.JobPost, error)
	ListByInterviewer(ctx context.Context, email string) ([]models.JobPost, error)
	// Delete removes the post and its applications; returns how many
	// applications went with it.
	Delete(ctx context.Context, id uint) (int64, error)
}

type jobService struct {
	jobs pgrepo.JobRepository
}

func NewJobService(jobs pgrepo.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) Create(ctx context.Context, in JobPostInput) (*models.JobPost, error) {
	const op = "JobService.Create"

	if in.Title == "" || in.Company == "" || in.InterviewerEmail == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title, company and interviewer_email are required", nil)
	}

	job := &models.JobPost{
		Title:            in.Title,
		Company:          in.Company,
		Location:         in.Location,
		Type:             in.Type,
		Salary:           in.Salary,
		Description:      in.Description,
		Skills:           in.Skills,
		InterviewerEmail: in.InterviewerEmail,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job post", err)
	}
	return job, nil
}

func (s *jobService) Get(ctx context.Context, id uint) (*models.JobPost, error) {
	const op = "JobService.Get"

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job post not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job post", err)
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context) ([]models.JobPost, error) {
	const op = "JobService.List"

	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list job posts", err)
	}
	return jobs, nil
}

func (s *jobService) ListByInterviewer(ctx context.Context, email string) ([]models.JobPost, error) {
	const op = "JobService.ListByInterviewer"

	jobs, err := s.jobs.ListByInterviewer(ctx, email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list job posts", err)
	}
	return jobs, nil
}

func (s *jobService) Delete(ctx context.Context, id uint) (int64, error) {
	const op = "JobService.Delete"

	if _, err := s.jobs.GetByID(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return 0, utils.E(utils.CodeNotFound, op, "job post not found", err)
		}
		return 0, utils.E(utils.CodeInternal, op, "failed to get job post", err)
	}

	deleted, err := s.jobs.DeleteWithApplications(ctx, id)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to delete job post", err)
	}
	return deleted, nil
}
