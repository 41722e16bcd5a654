package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type CandidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) error
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]models.Candidate, error)
	ListAll(ctx context.Context) ([]models.Candidate, error)
	Save(ctx context.Context, c *models.Candidate) error
	DeleteByEmail(ctx context.Context, email string) error
}

type candidateRepo struct {
	db *gorm.DB
}

func NewCandidateRepo(db *gorm.DB) CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *candidateRepo) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *candidateRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Candidate{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *candidateRepo) List(ctx context.Context, offset, limit int) ([]models.Candidate, error) {
	var cs []models.Candidate
	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&cs).Error
	return cs, err
}

func (r *candidateRepo) ListAll(ctx context.Context) ([]models.Candidate, error) {
	var cs []models.Candidate
	err := r.db.WithContext(ctx).Find(&cs).Error
	return cs, err
}

func (r *candidateRepo) Save(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *candidateRepo) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.Candidate{}).Error
}
