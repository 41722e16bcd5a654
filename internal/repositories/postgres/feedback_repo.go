package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *models.Feedback) error
	GetByID(ctx context.Context, id uint) (*models.Feedback, error)
	List(ctx context.Context, offset, limit int) ([]models.Feedback, error)
	ListByUser(ctx context.Context, userEmail string) ([]models.Feedback, error)
	Delete(ctx context.Context, f *models.Feedback) error
}

type feedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, f *models.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *feedbackRepo) GetByID(ctx context.Context, id uint) (*models.Feedback, error) {
	var f models.Feedback
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &f, err
}

func (r *feedbackRepo) List(ctx context.Context, offset, limit int) ([]models.Feedback, error) {
	var fs []models.Feedback
	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&fs).Error
	return fs, err
}

func (r *feedbackRepo) ListByUser(ctx context.Context, userEmail string) ([]models.Feedback, error) {
	var fs []models.Feedback
	err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Find(&fs).Error
	return fs, err
}

func (r *feedbackRepo) Delete(ctx context.Context, f *models.Feedback) error {
	return r.db.WithContext(ctx).Delete(f).Error
}
