package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/internal/domain/repository"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/medantra/hospital-api/pkg/utils"
)

// UserService handles administration of front-desk accounts
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the account creation input
type CreateUserInput struct {
	Username string
	Password string
	FullName string
	Role     string
}

// CreateUser creates a staff or admin account
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	role := input.Role
	if role == "" {
		role = "staff"
	}
	if role != "admin" && role != "staff" {
		return nil, apperror.NewBadRequestError("Role must be admin or staff")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Password: hashedPassword,
		FullName: input.FullName,
		Role:     role,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all accounts
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// DeactivateUser disables an account without removing it
func (s *UserService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	user.IsActive = false
	return s.userRepo.Update(ctx, user)
}

// DeleteUser removes an account
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}
	return s.userRepo.Delete(ctx, id)
}
