package usecase

import (
	"context"
	"errors"
	"testing"

	"store-rating/internal/data/entity"
	"store-rating/internal/dto/request"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()

	validReq := func() *request.SignupRequest {
		return &request.SignupRequest{
			Name:     "Christopher Alexander Whitfield",
			Email:    "Chris.Whitfield@Example.com",
			Password: "Secret@123",
			Address:  "42 Long Avenue",
		}
	}

	t.Run("Success creates plain USER with normalized email", func(t *testing.T) {
		repo := newTestRepo()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		resp, err := svc.Signup(ctx, validReq())
		assert.NoError(t, err)
		assert.Equal(t, "chris.whitfield@example.com", resp.Email)
		assert.Equal(t, entity.RoleUser, resp.Role)

		stored, _ := repo.User.FindByEmail(ctx, "chris.whitfield@example.com")
		assert.NotNil(t, stored)
		assert.NotEqual(t, "Secret@123", stored.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("Secret@123", stored.PasswordHash))
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		repo := newTestRepo()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		_, err := svc.Signup(ctx, validReq())
		assert.NoError(t, err)

		_, err = svc.Signup(ctx, validReq())
		assert.ErrorContains(t, err, "already registered")
	})

	t.Run("Validation failure", func(t *testing.T) {
		repo := newTestRepo()
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		req := validReq()
		req.Name = "Too Short"
		_, err := svc.Signup(ctx, req)
		assert.ErrorContains(t, err, "validation failed")
	})

	t.Run("Insert failure is not reported as a conflict", func(t *testing.T) {
		repo := newTestRepo()
		repo.User = &brokenUserRepo{UserRepository: repo.User, err: errors.New("connection refused")}
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		_, err := svc.Signup(ctx, validReq())
		assert.ErrorContains(t, err, "failed to create account")
		assert.NotContains(t, err.Error(), "already registered")
	})

	t.Run("Unique violation on insert is still a conflict", func(t *testing.T) {
		repo := newTestRepo()
		repo.User = &brokenUserRepo{UserRepository: repo.User, err: uniqueViolation("users_email_key")}
		svc := NewAuthService(repo, testConfig(), zap.NewNop())

		_, err := svc.Signup(ctx, validReq())
		assert.ErrorContains(t, err, "email already registered")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	user := seedUser(repo, "Christopher Alexander Whitfield", "chris@example.com", "Secret@123", entity.RoleStoreOwner)

	t.Run("Success returns token with role", func(t *testing.T) {
		resp, err := svc.Login(ctx, &request.LoginRequest{Email: "chris@example.com", Password: "Secret@123"})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID.String(), resp.User.ID)

		claims, err := utils.ParseToken(testConfig().JWT.Secret, resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "STORE_OWNER", claims.Role)
	})

	t.Run("Uppercase email still matches", func(t *testing.T) {
		resp, err := svc.Login(ctx, &request.LoginRequest{Email: "CHRIS@example.com", Password: "Secret@123"})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{Email: "chris@example.com", Password: "Wrong@12345"})
		assert.ErrorContains(t, err, "invalid credentials")
	})

	t.Run("Unknown email yields the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "Secret@123"})
		assert.ErrorContains(t, err, "invalid credentials")
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	user := seedUser(repo, "Christopher Alexander Whitfield", "chris@example.com", "Secret@123", entity.RoleUser)

	t.Run("Existing user", func(t *testing.T) {
		resp, err := svc.GetProfile(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, uuid.New())
		assert.ErrorContains(t, err, "user not found")
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	user := seedUser(repo, "Christopher Alexander Whitfield", "chris@example.com", "Secret@123", entity.RoleUser)

	t.Run("Wrong current password", func(t *testing.T) {
		_, err := svc.ChangePassword(ctx, user.ID, &request.ChangePasswordRequest{
			CurrentPassword: "Wrong@12345",
			NewPassword:     "Changed@123",
		})
		assert.ErrorContains(t, err, "incorrect current password")
	})

	t.Run("Success rotates hash and issues fresh token", func(t *testing.T) {
		resp, err := svc.ChangePassword(ctx, user.ID, &request.ChangePasswordRequest{
			CurrentPassword: "Secret@123",
			NewPassword:     "Changed@123",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		stored, _ := repo.User.FindByID(ctx, user.ID)
		assert.True(t, utils.CheckPasswordHash("Changed@123", stored.PasswordHash))
		assert.False(t, utils.CheckPasswordHash("Secret@123", stored.PasswordHash))
	})
}
