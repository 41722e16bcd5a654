package services

import (
	"context"
	"errors"

	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type SavedJobService interface {
	Save(ctx context.Context, candidateEmail string, jobID uint) (*models.SavedJob, error)
	Unsave(ctx context.Context, candidateEmail string, jobID uint) error
	ListJobs(ctx context.Context, candidateEmail string) ([]models.JobPost, error)
	Count(ctx context.Context, candidateEmail string) (int64, error)
}

type savedJobService struct {
	saved pgrepo.SavedJobRepository
	jobs  pgrepo.JobRepository
}

func NewSavedJobService(saved pgrepo.SavedJobRepository, jobs pgrepo.JobRepository) SavedJobService {
	return &savedJobService{saved: saved, jobs: jobs}
}

func (s *savedJobService) Save(ctx context.Context, candidateEmail string, jobID uint) (*models.SavedJob, error) {
	const op = "SavedJobService.Save"

	if candidateEmail == "" || jobID == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate_email and job_id are required", nil)
	}

	exists, err := s.saved.Exists(ctx, candidateEmail, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check saved job", err)
	}
	if exists {
		return nil, utils.E(utils.CodeConflict, op, "job already saved", nil)
	}

	row := &models.SavedJob{CandidateEmail: candidateEmail, JobID: jobID}
	if err := s.saved.Create(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save job", err)
	}
	return row, nil
}

func (s *savedJobService) Unsave(ctx context.Context, candidateEmail string, jobID uint) error {
	const op = "SavedJobService.Unsave"

	err := s.saved.Delete(ctx, candidateEmail, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "saved job not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to unsave job", err)
	}
	return nil
}

func (s *savedJobService) ListJobs(ctx context.Context, candidateEmail string) ([]models.JobPost, error) {
	const op = "SavedJobService.ListJobs"

	ids, err := s.saved.ListJobIDs(ctx, candidateEmail)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list saved jobs", err)
	}
	if len(ids) == 0 {
		return []models.JobPost{}, nil
	}

	jobs, err := s.jobs.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch saved job posts", err)
	}
	return jobs, nil
}

func (s *savedJobService) Count(ctx context.Context, candidateEmail string) (int64, error) {
	const op = "SavedJobService.Count"

	count, err := s.saved.Count(ctx, candidateEmail)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to count saved jobs", err)
	}
	return count, nil
}
