package services

import (
	"context"
	"io"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/storage"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

// FileUpload is an incoming multipart file, fully buffered by the handler.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type CandidateRegistration struct {
	Name     string
	Email    string
	Password string
	Skills   string
	Bio      string

	Resume       *FileUpload // mandatory
	ProfileImage *FileUpload // optional, placeholder when absent
}

type InterviewerRegistration struct {
	Name         string
	Email        string
	Password     string
	Expertise    string
	Availability string
	Department   string
}

// RegisterService creates the shared User row together with the role-specific
// profile row. Each role gets its own typed entry point; both rows commit
// together or not at all.
type RegisterService interface {
	RegisterCandidate(ctx context.Context, in CandidateRegistration) (*Identity, error)
	RegisterInterviewer(ctx context.Context, in InterviewerRegistration) (*Identity, error)
}

type registerService struct {
	db       *gorm.DB
	uploader storage.Uploader
}

func NewRegisterService(db *gorm.DB, uploader storage.Uploader) RegisterService {
	return &registerService{db: db, uploader: uploader}
}

func (s *registerService) RegisterCandidate(ctx context.Context, in CandidateRegistration) (*Identity, error) {
	const op = "RegisterService.RegisterCandidate"

	if in.Name == "" || in.Email == "" || in.Password == "" || in.Skills == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name, email, password and skills are required", nil)
	}
	if in.Resume == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "resume file is required", nil)
	}

	if err := s.checkEmailFree(ctx, op, in.Email, pgrepo.NewCandidateRepo(s.db).EmailExists); err != nil {
		return nil, err
	}

	resumePath, err := s.uploader.Upload(ctx,
		storage.ObjectName(in.Email, "resume", in.Resume.Filename),
		in.Resume.ContentType, in.Resume.Content)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save resume", err)
	}

	profileImagePath := models.DefaultProfileImage
	if in.ProfileImage != nil {
		profileImagePath, err = s.uploader.Upload(ctx,
			storage.ObjectName(in.Email, "profile", in.ProfileImage.Filename),
			in.ProfileImage.ContentType, in.ProfileImage.Content)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to save profile image", err)
		}
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     models.RoleCandidate,
	}
	candidate := &models.Candidate{
		Name:         in.Name,
		Email:        in.Email,
		Skills:       in.Skills,
		Bio:          in.Bio,
		Resume:       resumePath,
		ProfileImage: profileImagePath,
		Education:    models.EducationNotSpecified,
		Role:         models.RoleCandidate,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := pgrepo.NewUserRepo(tx).Create(ctx, user); err != nil {
			return err
		}
		return pgrepo.NewCandidateRepo(tx).Create(ctx, candidate)
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to register candidate", err)
	}

	return &Identity{Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

func (s *registerService) RegisterInterviewer(ctx context.Context, in InterviewerRegistration) (*Identity, error) {
	const op = "RegisterService.RegisterInterviewer"

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name, email and password are required", nil)
	}

	if err := s.checkEmailFree(ctx, op, in.Email, pgrepo.NewInterviewerRepo(s.db).EmailExists); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     models.RoleInterviewer,
	}
	interviewer := &models.Interviewer{
		Name:         in.Name,
		Email:        in.Email,
		Expertise:    in.Expertise,
		Availability: in.Availability,
		Department:   in.Department,
		Role:         models.RoleInterviewer,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := pgrepo.NewUserRepo(tx).Create(ctx, user); err != nil {
			return err
		}
		return pgrepo.NewInterviewerRepo(tx).Create(ctx, interviewer)
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to register interviewer", err)
	}

	return &Identity{Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

// checkEmailFree rejects the registration when the email exists in the shared
// user table or in the role-specific profile table.
func (s *registerService) checkEmailFree(ctx context.Context, op, email string,
	profileExists func(context.Context, string) (bool, error)) error {

	exists, err := pgrepo.NewUserRepo(s.db).EmailExists(ctx, email)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to check email", err)
	}
	if exists {
		return utils.E(utils.CodeConflict, op, "email already exists", nil)
	}

	exists, err = profileExists(ctx, email)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to check email", err)
	}
	if exists {
		return utils.E(utils.CodeConflict, op, "email already exists", nil)
	}
	return nil
}
