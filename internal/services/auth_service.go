package services

import (
	"context"
	"errors"

	"github.com/Zero-Sign/swift-hire/internal/models"
	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

// Identity is what a successful login returns. No session or token is
// issued; later requests re-identify the actor via plain parameters.
type Identity struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*Identity, error)
}

type authService struct {
	users pgrepo.UserRepository
}

func NewAuthService(users pgrepo.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, email, password string) (*Identity, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	// exact string comparison; credential hardening is out of scope
	if u.Password != password {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
	}

	return &Identity{Name: u.Name, Email: u.Email, Role: u.Role}, nil
}
