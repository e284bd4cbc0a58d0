package usecase

import (
	"context"
	"testing"
	"time"

	"srent/internal/data/entity"
	"srent/internal/data/repository"
	"srent/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(users *fakeUserRepo, sessions *fakeSessionRepo) AuthService {
	repo := &repository.Repository{
		User:    users,
		Session: sessions,
	}
	return NewAuthService(repo, zap.NewNop(), 24)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{user: nil}, &fakeSessionRepo{})

	_, err := svc.Login(context.Background(), &request.LoginRequest{UserID: 3, Username: "asha"})
	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestLoginWithoutRole(t *testing.T) {
	users := &fakeUserRepo{
		user: &entity.User{ID: 3, Username: "asha"},
		role: entity.RoleUnknown,
	}
	svc := newAuthService(users, &fakeSessionRepo{})

	_, err := svc.Login(context.Background(), &request.LoginRequest{UserID: 3, Username: "asha"})
	assert.ErrorIs(t, err, ErrNoRole)
}

func TestLoginCreatesSession(t *testing.T) {
	users := &fakeUserRepo{
		user: &entity.User{ID: 3, Username: "asha"},
		role: entity.RoleCustomer,
	}
	sessions := &fakeSessionRepo{}
	svc := newAuthService(users, sessions)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{UserID: 3, Username: "asha"})
	require.NoError(t, err)

	require.NotNil(t, sessions.created)
	assert.Equal(t, int64(3), sessions.created.UserID)
	assert.Equal(t, entity.RoleCustomer, sessions.created.Role)
	assert.Equal(t, sessions.created.Token.String(), resp.Token)
	assert.Equal(t, "customer", resp.Role)

	// Expiry follows the configured session lifetime.
	lifetime := sessions.created.ExpiresAt.Sub(sessions.created.CreatedAt)
	assert.Equal(t, 24*time.Hour, lifetime)
}

func TestRegisterCustomerRejectsTakenEmail(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{emailRegistered: true}, &fakeSessionRepo{})

	req := &request.RegisterCustomerRequest{
		FirstName:  "Asha",
		LastName:   "Verma",
		Username:   "asha",
		Email:      "asha@example.com",
		Gender:     "female",
		Address:    "12 Lake Road",
		Occupation: "engineer",
	}
	_, err := svc.RegisterCustomer(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterCustomerCreatesRoleRow(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users, &fakeSessionRepo{})

	req := &request.RegisterCustomerRequest{
		FirstName:  "Asha",
		LastName:   "Verma",
		Username:   "asha",
		Email:      "asha@example.com",
		Gender:     "female",
		Address:    "12 Lake Road",
		Occupation: "engineer",
	}
	resp, err := svc.RegisterCustomer(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, users.createdCustomer)
	assert.Nil(t, users.createdAdmin)
	assert.Equal(t, int64(21), resp.ID)
	assert.Equal(t, "asha@example.com", resp.Email)
}

func TestLogoutDeletesSession(t *testing.T) {
	sessions := &fakeSessionRepo{}
	svc := newAuthService(&fakeUserRepo{}, sessions)

	token := uuid.New()
	err := svc.Logout(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{token}, sessions.deleted)
}
