package services

import (
	"context"
	"errors"

	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

const maxFeedbackLength = 300

type FeedbackInput struct {
	UserEmail string
	UserName  string
	UserRole  string
	Rating    int
	Message   string
}

type FeedbackService interface {
	Create(ctx context.Context, in FeedbackInput) (*models.Feedback, error)
	Get(ctx context.Context, id uint) (*models.Feedback, error)
	List(ctx context.Context, skip, limit int) ([]models.Feedback, error)
	ListByUser(ctx context.Context, userEmail string) ([]models.Feedback, error)
	Delete(ctx context.Context, id uint) error
}

type feedbackService struct {
	feedback pgrepo.FeedbackRepository
}

func NewFeedbackService(feedback pgrepo.FeedbackRepository) FeedbackService {
	return &feedbackService{feedback: feedback}
}

func (s *feedbackService) Create(ctx context.Context, in FeedbackInput) (*models.Feedback, error) {
	const op = "FeedbackService.Create"

	if in.UserEmail == "" || in.UserName == "" || in.UserRole == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_email, user_name and user_role are required", nil)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "rating must be between 1 and 5", nil)
	}
	if len(in.Message) > maxFeedbackLength {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message must be 300 characters or less", nil)
	}

	f := &models.Feedback{
		UserEmail: in.UserEmail,
		UserName:  in.UserName,
		UserRole:  in.UserRole,
		Rating:    in.Rating,
		Message:   in.Message,
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create feedback", err)
	}
	return f, nil
}

func (s *feedbackService) Get(ctx context.Context, id uint) (*models.Feedback, error) {
	const op = "FeedbackService.Get"

	f, err := s.feedback.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "feedback not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get feedback", err)
	}
	return f, nil
}

func (s *feedbackService) List(ctx context.Context, skip, limit int) ([]models.Feedback, error) {
	const op = "FeedbackService.List"

	if limit <= 0 {
		limit = 100
	}
	fs, err := s.feedback.List(ctx, skip, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list feedback", err)
	}
	return fs, nil
}

func (s *feedbackService) ListByUser(ctx context.Context, userEmail string) ([]models.Feedback, error) {
	const op = "FeedbackService.ListByUser"

	fs, err := s.feedback.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list feedback", err)
	}
	return fs, nil
}

// Delete removes any feedback row without an ownership check; callers are
// trusted.
func (s *feedbackService) Delete(ctx context.Context, id uint) error {
	const op = "FeedbackService.Delete"

	f, err := s.feedback.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "feedback not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get feedback", err)
	}
	if err := s.feedback.Delete(ctx, f); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete feedback", err)
	}
	return nil
}
