package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/security"
	"rental-backoffice/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestAuthService_Login(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testSecret, 60)
	svc := service.NewAuthService(userRepo, tokens)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &domain.User{
		ID:             "u1",
		Email:          "staff@example.com",
		Name:           "Staff",
		Role:           domain.UserRoleStaff,
		HashedPassword: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		userRepo.On("GetByEmail", ctx, "staff@example.com").Return(user, nil)

		token, got, err := svc.Login(ctx, "staff@example.com", "correct-horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "u1", got.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "staff", claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo.ExpectedCalls = nil
		userRepo.On("GetByEmail", ctx, "staff@example.com").Return(user, nil)

		_, _, err := svc.Login(ctx, "staff@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo.ExpectedCalls = nil
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, assert.AnError)

		_, _, err := svc.Login(ctx, "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testSecret, 60)
	svc := service.NewAuthService(userRepo, tokens)
	ctx := context.Background()

	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(ctx, "Admin", "admin@example.com", "s3cret-pass", domain.UserRoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("s3cret-pass")))
}
