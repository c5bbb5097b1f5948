// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvhoang/cinelog/internal/platform/apperr"
	"github.com/nvhoang/cinelog/internal/platform/sec"
	"github.com/nvhoang/cinelog/internal/users/auth"
)

// # In-Memory Fakes

// fakeUserRepository mimics the PostgreSQL repository, including the email
// uniqueness constraint behavior.
type fakeUserRepository struct {
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[string]*auth.User),
		byEmail: make(map[string]*auth.User),
	}
}

func (r *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return apperr.Conflict("Email is already registered")
	}
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

// fakeSessionRepository mimics the Redis store without TTL expiry.
type fakeSessionRepository struct {
	sessions map[string]string
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]string)}
}

func (r *fakeSessionRepository) Set(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	r.sessions[tokenHash] = userID
	return nil
}

func (r *fakeSessionRepository) Get(_ context.Context, tokenHash string) (string, error) {
	userID, ok := r.sessions[tokenHash]
	if !ok {
		return "", apperr.NotFound("Session")
	}
	return userID, nil
}

func (r *fakeSessionRepository) Delete(_ context.Context, tokenHash string) error {
	delete(r.sessions, tokenHash)
	return nil
}

type serviceFixture struct {
	service  *auth.Service
	users    *fakeUserRepository
	sessions *fakeSessionRepository
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	tokenService, err := sec.NewTokenService("service-test-secret", "cinelog.app")
	require.NoError(t, err)

	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()

	return &serviceFixture{
		service:  auth.NewService(users, sessions, tokenService, time.Hour, 24*time.Hour),
		users:    users,
		sessions: sessions,
	}
}

func registerTestUser(t *testing.T, fixture *serviceFixture) *auth.User {
	t.Helper()

	user, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Name:     "Grace",
		Email:    "grace@example.com",
		Password: "hopper-mk1",
	})
	require.NoError(t, err)
	return user
}

// # Registration

/*
TestService_Register checks the happy path: hashed password, normalized
email, and no token issuance.
*/
func TestService_Register(t *testing.T) {
	fixture := newServiceFixture(t)

	user, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Name:     "Grace",
		Email:    "  Grace@Example.COM ",
		Password: "hopper-mk1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "grace@example.com", user.Email)
	assert.NotEqual(t, "hopper-mk1", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("hopper-mk1", user.PasswordHash))
}

/*
TestService_Register_DuplicateEmail surfaces the uniqueness violation as a
409 Conflict, including when only the casing differs.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	fixture := newServiceFixture(t)
	registerTestUser(t, fixture)

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Name:     "Impostor",
		Email:    "GRACE@example.com",
		Password: "other-password",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 409, appError.HTTPStatus)
}

// # Login

/*
TestService_Login issues an access token and a refresh session for valid
credentials.
*/
func TestService_Login(t *testing.T) {
	fixture := newServiceFixture(t)
	registered := registerTestUser(t, fixture)

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "Grace@example.com",
		Password: "hopper-mk1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, registered.ID, session.User.ID)

	// Only the hash of the refresh token is stored.
	_, hasPlain := fixture.sessions.sessions[session.RefreshToken]
	assert.False(t, hasPlain)
	userID, err := fixture.sessions.Get(context.Background(), sec.HashToken(session.RefreshToken))
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

/*
TestService_Login_Rejections verifies that unknown email and wrong password
are indistinguishable to the caller.
*/
func TestService_Login_Rejections(t *testing.T) {
	fixture := newServiceFixture(t)
	registerTestUser(t, fixture)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown_email", "nobody@example.com", "hopper-mk1"},
		{"wrong_password", "grace@example.com", "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.service.Login(context.Background(), auth.LoginInput{
				Email:    tt.email,
				Password: tt.password,
			})
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, 401, appError.HTTPStatus)
			assert.Equal(t, "Invalid email or password", appError.Message)
		})
	}
}

// # Session Lifecycle

/*
TestService_RefreshSession checks token rotation: the old refresh token is
revoked and a distinct replacement is issued.
*/
func TestService_RefreshSession(t *testing.T) {
	fixture := newServiceFixture(t)
	registered := registerTestUser(t, fixture)

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "hopper-mk1",
	})
	require.NoError(t, err)

	rotated, err := fixture.service.RefreshSession(context.Background(), session.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, registered.ID, rotated.User.ID)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// Replaying the consumed token must fail.
	_, err = fixture.service.RefreshSession(context.Background(), session.RefreshToken)
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
}

/*
TestService_Logout revokes the session and stays idempotent on repeat.
*/
func TestService_Logout(t *testing.T) {
	fixture := newServiceFixture(t)
	registerTestUser(t, fixture)

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "hopper-mk1",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))

	_, err = fixture.service.RefreshSession(context.Background(), session.RefreshToken)
	assert.Error(t, err)

	// Logging out twice is not an error.
	assert.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))
}

/*
TestService_Profile returns the stored account or a NotFound.
*/
func TestService_Profile(t *testing.T) {
	fixture := newServiceFixture(t)
	registered := registerTestUser(t, fixture)

	user, err := fixture.service.Profile(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, user.Email)

	_, err = fixture.service.Profile(context.Background(), "missing-id")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}
