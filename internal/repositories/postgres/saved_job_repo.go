package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type SavedJobRepository interface {
	Create(ctx context.Context, s *models.SavedJob) error
	Exists(ctx context.Context, candidateEmail string, jobID uint) (bool, error)
	Delete(ctx context.Context, candidateEmail string, jobID uint) error
	ListJobIDs(ctx context.Context, candidateEmail string) ([]uint, error)
	Count(ctx context.Context, candidateEmail string) (int64, error)
}

type savedJobRepo struct {
	db *gorm.DB
}

func NewSavedJobRepo(db *gorm.DB) SavedJobRepository {
	return &savedJobRepo{db: db}
}

func (r *savedJobRepo) Create(ctx context.Context, s *models.SavedJob) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *savedJobRepo) Exists(ctx context.Context, candidateEmail string, jobID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SavedJob{}).
		Where("candidate_email = ? AND job_id = ?", candidateEmail, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *savedJobRepo) Delete(ctx context.Context, candidateEmail string, jobID uint) error {
	res := r.db.WithContext(ctx).
		Where("candidate_email = ? AND job_id = ?", candidateEmail, jobID).
		Delete(&models.SavedJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *savedJobRepo) ListJobIDs(ctx context.Context, candidateEmail string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.SavedJob{}).
		Where("candidate_email = ?", candidateEmail).
		Pluck("job_id", &ids).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return ids, err
}

func (r *savedJobRepo) Count(ctx context.Context, candidateEmail string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SavedJob{}).
		Where("candidate_email = ?", candidateEmail).
		Count(&count).Error
	return count, err
}
