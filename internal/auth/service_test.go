// Copyright (c) 2026 Melody. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorogi/melody/internal/auth"
	"github.com/chorogi/melody/internal/platform/apperr"
	"github.com/chorogi/melody/internal/platform/sec"
)

// fakeUserRepository is an in-memory UserRepository for service tests.
type fakeUserRepository struct {
	users  map[string]*auth.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*auth.User{}, nextID: 1}
}

func (repo *fakeUserRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	for _, user := range repo.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := repo.users[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repo *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	user.ID = repo.nextID
	user.CreatedAt = time.Now()
	repo.nextID++
	repo.users[user.Email] = user
	return nil
}

// fakeTokenProvider records the last generation request.
type fakeTokenProvider struct {
	lastUserID int64
	lastRole   string
	lastTTL    time.Duration
}

func (provider *fakeTokenProvider) Generate(userID int64, _ string, role string, timeToLive time.Duration) (string, error) {
	provider.lastUserID = userID
	provider.lastRole = role
	provider.lastTTL = timeToLive
	return "signed-token", nil
}

/*
TestService_Register_Then_Login walks the happy path: enrollment followed by
authentication with the same credentials.
*/
func TestService_Register_Then_Login(t *testing.T) {
	repo := newFakeUserRepository()
	tokens := &fakeTokenProvider{}
	service := auth.NewService(repo, tokens)

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Email:       "listener@example.com",
		Password:    "correct-horse-battery",
		DisplayName: "Listener",
	})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleUser, user.Role)
	assert.NotEqual(t, "correct-horse-battery", user.PasswordHash, "password must be hashed")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "listener@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, user.ID, session.User.ID)
	assert.Equal(t, user.ID, tokens.lastUserID)
	assert.Equal(t, "user", tokens.lastRole)

	// Sessions are week-long by contract.
	assert.Equal(t, 7*24*time.Hour, tokens.lastTTL)
}

/*
TestService_Register_DuplicateEmail verifies the uniqueness conflict.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, &fakeTokenProvider{})

	input := auth.RegisterInput{
		Email:       "listener@example.com",
		Password:    "correct-horse-battery",
		DisplayName: "Listener",
	}

	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_Login_IdenticalFailures verifies that an unknown email and a wrong
password produce byte-identical errors — no account enumeration signal.
*/
func TestService_Login_IdenticalFailures(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, &fakeTokenProvider{})

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:       "listener@example.com",
		Password:    "correct-horse-battery",
		DisplayName: "Listener",
	})
	require.NoError(t, err)

	_, unknownEmailErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongPasswordErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "listener@example.com",
		Password: "wrong-password",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)

	unknownAE := apperr.As(unknownEmailErr)
	wrongAE := apperr.As(wrongPasswordErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)

	assert.Equal(t, unknownAE.Code, wrongAE.Code)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
	assert.Equal(t, unknownAE.HTTPStatus, wrongAE.HTTPStatus)
	assert.Equal(t, 401, unknownAE.HTTPStatus)
}
