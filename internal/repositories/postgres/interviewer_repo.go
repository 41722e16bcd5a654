package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type InterviewerRepository interface {
	Create(ctx context.Context, iv *models.Interviewer) error
	GetByEmail(ctx context.Context, email string) (*models.Interviewer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type interviewerRepo struct {
	db *gorm.DB
}

func NewInterviewerRepo(db *gorm.DB) InterviewerRepository {
	return &interviewerRepo{db: db}
}

func (r *interviewerRepo) Create(ctx context.Context, iv *models.Interviewer) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *interviewerRepo) GetByEmail(ctx context.Context, email string) (*models.Interviewer, error) {
	var iv models.Interviewer
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&iv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &iv, err
}

func (r *interviewerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Interviewer{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *interviewerRepo) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.Interviewer{}).Error
}
