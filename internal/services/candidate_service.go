package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/storage"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

const recommendationLimit = 3

type CandidateUpdate struct {
	Name              string
	Skills            string
	Bio               *string
	Education         models.Education
	YearsOfExperience int

	Resume       *FileUpload
	ProfileImage *FileUpload
}

type CandidateService interface {
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	Update(ctx context.Context, email string, in CandidateUpdate) (*models.Candidate, error)
	List(ctx context.Context, skip, limit int) ([]models.Candidate, error)
	FilterBySkills(ctx context.Context, skills string) ([]models.Candidate, error)
	RecommendJobs(ctx context.Context, email string) ([]models.JobPost, error)
}

type candidateService struct {
	db         *gorm.DB
	candidates pgrepo.CandidateRepository
	jobs       pgrepo.JobRepository
	uploader   storage.Uploader
}

func NewCandidateService(db *gorm.DB, candidates pgrepo.CandidateRepository, jobs pgrepo.JobRepository, uploader storage.Uploader) CandidateService {
	return &candidateService{db: db, candidates: candidates, jobs: jobs, uploader: uploader}
}

func (s *candidateService) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	const op = "CandidateService.GetByEmail"

	c, err := s.candidates.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}
	return c, nil
}

func (s *candidateService) Update(ctx context.Context, email string, in CandidateUpdate) (*models.Candidate, error) {
	const op = "CandidateService.Update"

	c, err := s.candidates.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}

	if in.Name == "" || in.Skills == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name and skills are required", nil)
	}

	c.Name = in.Name
	c.Skills = in.Skills
	c.Education = in.Education
	if c.Education == "" {
		c.Education = models.EducationNotSpecified
	}
	c.YearsOfExperience = in.YearsOfExperience
	if in.Bio != nil {
		c.Bio = *in.Bio
	}

	if in.Resume != nil {
		path, err := s.uploader.Upload(ctx,
			storage.ObjectName(email, "resume", in.Resume.Filename),
			in.Resume.ContentType, in.Resume.Content)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to save resume", err)
		}
		c.Resume = path
	}
	if in.ProfileImage != nil {
		path, err := s.uploader.Upload(ctx,
			storage.ObjectName(email, "profile", in.ProfileImage.Filename),
			in.ProfileImage.ContentType, in.ProfileImage.Content)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to save profile image", err)
		}
		c.ProfileImage = path
	}

	// candidate row and the shared user row change together
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := pgrepo.NewCandidateRepo(tx).Save(ctx, c); err != nil {
			return err
		}
		users := pgrepo.NewUserRepo(tx)
		u, err := users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return nil
			}
			return err
		}
		u.Name = in.Name
		return users.Save(ctx, u)
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update candidate", err)
	}
	return c, nil
}

func (s *candidateService) List(ctx context.Context, skip, limit int) ([]models.Candidate, error) {
	const op = "CandidateService.List"

	if limit <= 0 {
		limit = 100
	}
	cs, err := s.candidates.List(ctx, skip, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list candidates", err)
	}
	return cs, nil
}

func (s *candidateService) FilterBySkills(ctx context.Context, skills string) ([]models.Candidate, error) {
	const op = "CandidateService.FilterBySkills"

	all, err := s.candidates.ListAll(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list candidates", err)
	}
	if strings.TrimSpace(skills) == "" {
		return all, nil
	}

	wanted := splitSkills(skills)
	var filtered []models.Candidate
	for _, c := range all {
		haystack := strings.ToLower(c.Skills)
		for _, w := range wanted {
			if strings.Contains(haystack, w) {
				filtered = append(filtered, c)
				break
			}
		}
	}
	return filtered, nil
}

// RecommendJobs returns the candidate's top matches by case-insensitive
// substring overlap between skill lists (either direction counts). Falls back
// to random jobs when nothing overlaps, and to an empty result when no jobs
// exist at all.
func (s *candidateService) RecommendJobs(ctx context.Context, email string) ([]models.JobPost, error) {
	const op = "CandidateService.RecommendJobs"

	c, err := s.candidates.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}

	allJobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	if len(allJobs) == 0 {
		return []models.JobPost{}, nil
	}

	candidateSkills := splitSkills(c.Skills)

	var matching []models.JobPost
	for _, job := range allJobs {
		if skillsOverlap(candidateSkills, splitSkills(job.Skills)) {
			matching = append(matching, job)
		}
	}

	if len(matching) > 0 {
		if len(matching) > recommendationLimit {
			matching = matching[:recommendationLimit]
		}
		return matching, nil
	}

	n := recommendationLimit
	if len(allJobs) < n {
		n = len(allJobs)
	}
	picks := make([]models.JobPost, 0, n)
	for _, i := range rand.Perm(len(allJobs))[:n] {
		picks = append(picks, allJobs[i])
	}
	return picks, nil
}

func splitSkills(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func skillsOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if strings.Contains(x, y) || strings.Contains(y, x) {
				return true
			}
		}
	}
	return false
}
