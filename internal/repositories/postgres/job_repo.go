package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type JobRepository interface {
	Create(ctx context.Context, j *models.JobPost) error
	GetByID(ctx context.Context, id uint) (*models.JobPost, error)
	ListAll(ctx context.Context) ([]models.JobPost, error)
	ListByInterviewer(ctx context.Context, email string) ([]models.JobPost, error)
	ListByIDs(ctx context.Context, ids []uint) ([]models.JobPost, error)
	// DeleteWithApplications removes the post and every application that
	// references it, in one transaction. Returns the application count.
	DeleteWithApplications(ctx context.Context, id uint) (int64, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *models.JobPost) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) GetByID(ctx context.Context, id uint) (*models.JobPost, error) {
	var j models.JobPost
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) ListAll(ctx context.Context) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) ListByInterviewer(ctx context.Context, email string) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := r.db.WithContext(ctx).
		Where("interviewer_email = ?", email).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) ListByIDs(ctx context.Context, ids []uint) ([]models.JobPost, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var jobs []models.JobPost
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) DeleteWithApplications(ctx context.Context, id uint) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("job_id = ?", id).Delete(&models.JobApplication{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return tx.Where("id = ?", id).Delete(&models.JobPost{}).Error
	})
	return deleted, err
}
