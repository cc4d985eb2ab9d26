package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
	"github.com/medantra/hospital-api/pkg/apperror"
	"github.com/medantra/hospital-api/pkg/utils"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func TestCreateUserDefaultsToStaff(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username: "reception1",
		Password: "secret123",
		FullName: "Anita Joseph",
	})
	require.NoError(t, err)
	require.Equal(t, "staff", user.Role)
	require.True(t, user.IsActive)
	require.NotEqual(t, "secret123", user.Password)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username: "reception1",
		Password: "secret123",
		Role:     "superuser",
	})
	require.Error(t, err)
	require.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{Username: "reception1", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), &CreateUserInput{Username: "reception1", Password: "other456"})
	require.Error(t, err)
	require.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeactivateUserKeepsRecord(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{Username: "reception1", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateUser(context.Background(), user.ID))
	stored, _ := userRepo.GetByID(context.Background(), user.ID)
	require.NotNil(t, stored)
	require.False(t, stored.IsActive)
}

func TestLoginFlow(t *testing.T) {
	userRepo := newFakeUserRepo()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{
		Username: "reception1",
		Password: hash,
		FullName: "Anita Joseph",
		Role:     "staff",
		IsActive: true,
	}))

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 2*time.Hour)
	svc := NewAuthService(userRepo, jwtManager)

	result, err := svc.Login(context.Background(), &LoginInput{Username: "reception1", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "reception1", Password: "wrong"})
	require.Error(t, err)
	require.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestLoginInactiveUserForbidden(t *testing.T) {
	userRepo := newFakeUserRepo()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{
		Username: "reception1",
		Password: hash,
		IsActive: false,
	}))

	svc := NewAuthService(userRepo, utils.NewJWTManager("test-secret", time.Hour, 2*time.Hour))

	_, err = svc.Login(context.Background(), &LoginInput{Username: "reception1", Password: "secret123"})
	require.Error(t, err)
	require.Equal(t, 403, apperror.GetAppError(err).Code)
}
