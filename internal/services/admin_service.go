package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

// UserView is the admin-facing projection of a user; the password never
// leaves the service layer.
type UserView struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type AdminUserCreate struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

type AdminUserUpdate struct {
	Name  string
	Email string
	Role  models.Role
}

type AdminService interface {
	ListUsers(ctx context.Context, nameFilter string, roleFilter models.Role) ([]UserView, error)
	GetUser(ctx context.Context, id uint) (*UserView, error)
	CreateUser(ctx context.Context, in AdminUserCreate) (*UserView, error)
	UpdateUser(ctx context.Context, id uint, in AdminUserUpdate) (*UserView, error)
	DeleteUser(ctx context.Context, id uint) error
}

type adminService struct {
	db    *gorm.DB
	users pgrepo.UserRepository
}

func NewAdminService(db *gorm.DB, users pgrepo.UserRepository) AdminService {
	return &adminService{db: db, users: users}
}

func (s *adminService) ListUsers(ctx context.Context, nameFilter string, roleFilter models.Role) ([]UserView, error) {
	const op = "AdminService.ListUsers"

	if roleFilter != "" && !roleFilter.Valid() {
		roleFilter = ""
	}
	users, err := s.users.List(ctx, nameFilter, roleFilter)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list users", err)
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
	}
	return views, nil
}

func (s *adminService) GetUser(ctx context.Context, id uint) (*UserView, error) {
	const op = "AdminService.GetUser"

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return &UserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// CreateUser makes the shared user row plus a blank companion profile row
// for the role, in one transaction.
func (s *adminService) CreateUser(ctx context.Context, in AdminUserCreate) (*UserView, error) {
	const op = "AdminService.CreateUser"

	if !in.Role.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "role must be either 'Candidate' or 'Interviewer'", nil)
	}

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}
	if exists {
		return nil, utils.E(utils.CodeConflict, op, "email already registered", nil)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := pgrepo.NewUserRepo(tx).Create(ctx, user); err != nil {
			return err
		}
		switch in.Role {
		case models.RoleCandidate:
			return pgrepo.NewCandidateRepo(tx).Create(ctx, &models.Candidate{
				Name:         in.Name,
				Email:        in.Email,
				Skills:       "",
				Resume:       "uploads/default_resume.pdf",
				ProfileImage: models.DefaultProfileImage,
				Education:    models.EducationNotSpecified,
				Role:         models.RoleCandidate,
			})
		case models.RoleInterviewer:
			return pgrepo.NewInterviewerRepo(tx).Create(ctx, &models.Interviewer{
				Name:  in.Name,
				Email: in.Email,
				Role:  models.RoleInterviewer,
			})
		}
		return nil
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	return &UserView{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

func (s *adminService) UpdateUser(ctx context.Context, id uint, in AdminUserUpdate) (*UserView, error) {
	const op = "AdminService.UpdateUser"

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}

	if !in.Role.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "role must be either 'Candidate' or 'Interviewer'", nil)
	}
	if in.Email != u.Email {
		exists, err := s.users.EmailExists(ctx, in.Email)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
		}
		if exists {
			return nil, utils.E(utils.CodeConflict, op, "email already registered", nil)
		}
	}

	u.Name = in.Name
	u.Email = in.Email
	u.Role = in.Role
	if err := s.users.Save(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update user", err)
	}
	return &UserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// DeleteUser removes the user and the companion candidate/interviewer row in
// one transaction, so the two tables cannot drift apart.
func (s *adminService) DeleteUser(ctx context.Context, id uint) error {
	const op = "AdminService.DeleteUser"

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get user", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := pgrepo.NewUserRepo(tx).Delete(ctx, u); err != nil {
			return err
		}
		switch u.Role {
		case models.RoleCandidate:
			return pgrepo.NewCandidateRepo(tx).DeleteByEmail(ctx, u.Email)
		case models.RoleInterviewer:
			return pgrepo.NewInterviewerRepo(tx).DeleteByEmail(ctx, u.Email)
		}
		return nil
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}
	return nil
}
