package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type NoteRepository interface {
	Create(ctx context.Context, n *models.Note) error
	GetByID(ctx context.Context, id uint) (*models.Note, error)
	ListByApplication(ctx context.Context, applicationID uint) ([]models.Note, error)
	Save(ctx context.Context, n *models.Note) error
	Delete(ctx context.Context, n *models.Note) error
}

type noteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, n *models.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noteRepo) GetByID(ctx context.Context, id uint) (*models.Note, error) {
	var n models.Note
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &n, err
}

func (r *noteRepo) ListByApplication(ctx context.Context, applicationID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepo) Save(ctx context.Context, n *models.Note) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *noteRepo) Delete(ctx context.Context, n *models.Note) error {
	return r.db.WithContext(ctx).Delete(n).Error
}
