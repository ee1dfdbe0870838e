// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starchive/starchive/internal/platform/apperr"
	"github.com/starchive/starchive/internal/platform/sec"
	"github.com/starchive/starchive/internal/users/auth"
)

// # Fakes

type fakeUserRepository struct {
	users       map[string]*auth.User // keyed by id
	touchedIDs  []string
	createCalls int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*auth.User)}
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id string) (*auth.User, error) {
	if user, exists := r.users[id]; exists {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeUserRepository) Create(ctx context.Context, user *auth.User) error {
	r.createCalls++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) UpdatePassword(ctx context.Context, userID, newHash string) error {
	user, exists := r.users[userID]
	if !exists {
		return apperr.NotFound("User")
	}
	user.PasswordHash = newHash
	return nil
}

func (r *fakeUserRepository) TouchLogin(ctx context.Context, userID string) error {
	r.touchedIDs = append(r.touchedIDs, userID)
	return nil
}

type fakeSessionRepository struct {
	sessions map[string]*auth.Session // keyed by id
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*auth.Session)}
}

func (r *fakeSessionRepository) Create(ctx context.Context, session *auth.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*auth.Session, error) {
	for _, session := range r.sessions {
		if session.TokenHash == tokenHash && !session.IsRevoked && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return nil, apperr.NotFound("Session")
}

func (r *fakeSessionRepository) Revoke(ctx context.Context, sessionID string) error {
	session, exists := r.sessions[sessionID]
	if !exists {
		return apperr.NotFound("Session")
	}
	session.IsRevoked = true
	return nil
}

func (r *fakeSessionRepository) RevokeAll(ctx context.Context, userID string) error {
	for _, session := range r.sessions {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepository) RevokeOthers(ctx context.Context, userID, currentSessionID string) error {
	for _, session := range r.sessions {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepository) DeleteExpired(ctx context.Context) error { return nil }

func (r *fakeSessionRepository) activeCount() int {
	count := 0
	for _, session := range r.sessions {
		if !session.IsRevoked {
			count++
		}
	}
	return count
}

type fakeResetTokenRepository struct {
	tokens map[string]string
}

func newFakeResetTokenRepository() *fakeResetTokenRepository {
	return &fakeResetTokenRepository{tokens: make(map[string]string)}
}

func (r *fakeResetTokenRepository) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	r.tokens[token] = userID
	return nil
}

func (r *fakeResetTokenRepository) Get(ctx context.Context, token string) (string, error) {
	userID, exists := r.tokens[token]
	if !exists {
		return "", apperr.Unauthorized("Invalid or expired reset token")
	}
	return userID, nil
}

func (r *fakeResetTokenRepository) Delete(ctx context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

type fakeSessionIndex struct {
	tracked   int
	forgotten int
}

func (i *fakeSessionIndex) Track(ctx context.Context, tokenHash, sessionID string, ttl time.Duration) error {
	i.tracked++
	return nil
}

func (i *fakeSessionIndex) Forget(ctx context.Context, tokenHash string) error {
	i.forgotten++
	return nil
}

type fakeTokenProvider struct{}

func (p *fakeTokenProvider) GenerateAccessToken(userID, username, role string, ttl time.Duration) (string, error) {
	return "signed-jwt-for-" + username, nil
}

// # Fixture

type authFixture struct {
	service  *auth.Service
	users    *fakeUserRepository
	sessions *fakeSessionRepository
	resets   *fakeResetTokenRepository
	index    *fakeSessionIndex
}

func newAuthFixture() *authFixture {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	resets := newFakeResetTokenRepository()
	index := &fakeSessionIndex{}

	return &authFixture{
		service:  auth.NewService(users, sessions, resets, index, &fakeTokenProvider{}),
		users:    users,
		sessions: sessions,
		resets:   resets,
		index:    index,
	}
}

func (f *authFixture) register(t *testing.T, username, email, password string) *auth.User {
	t.Helper()
	user, err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// # Tests

/*
TestService_Register verifies account creation assigns identity, role, and a
usable password hash.
*/
func TestService_Register(t *testing.T) {
	fixture := newAuthFixture()

	user := fixture.register(t, "leia", "leia@starchive.app", "alderaan-rules")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleMember, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "alderaan-rules", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("alderaan-rules", user.PasswordHash))
}

/*
TestService_Register_Conflicts verifies that duplicate emails and usernames
are rejected with client-safe 409 errors.
*/
func TestService_Register_Conflicts(t *testing.T) {
	fixture := newAuthFixture()
	fixture.register(t, "leia", "leia@starchive.app", "alderaan-rules")

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "other", Email: "leia@starchive.app", Password: "x",
	})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)

	_, err = fixture.service.Register(context.Background(), auth.RegisterInput{
		Username: "leia", Email: "other@starchive.app", Password: "x",
	})
	require.Error(t, err)
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)

	assert.Equal(t, 1, fixture.users.createCalls)
}

/*
TestService_Login exercises the flexible email-or-username lookup and the
session side effects of a successful authentication.
*/
func TestService_Login(t *testing.T) {
	fixture := newAuthFixture()
	registered := fixture.register(t, "leia", "leia@starchive.app", "alderaan-rules")

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "leia@starchive.app",
		Password: "alderaan-rules",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-jwt-for-leia", session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.True(t, session.RefreshTokenExpiresAt.After(time.Now()))
	assert.Equal(t, 1, fixture.sessions.activeCount())
	assert.Equal(t, 1, fixture.index.tracked)
	assert.Equal(t, []string{registered.ID}, fixture.users.touchedIDs)

	// Username works as login too.
	_, err = fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "leia",
		Password: "alderaan-rules",
	})
	require.NoError(t, err)
}

/*
TestService_Login_Rejections verifies the anti-enumeration behavior: unknown
users, wrong passwords, and deactivated accounts share one generic message.
*/
func TestService_Login_Rejections(t *testing.T) {
	fixture := newAuthFixture()
	registered := fixture.register(t, "leia", "leia@starchive.app", "alderaan-rules")

	tests := []struct {
		name  string
		setup func()
		input auth.LoginInput
	}{
		{
			name:  "unknown user",
			input: auth.LoginInput{Login: "ghost@starchive.app", Password: "whatever"},
		},
		{
			name:  "wrong password",
			input: auth.LoginInput{Login: "leia@starchive.app", Password: "wrong"},
		},
		{
			name:  "deactivated account",
			setup: func() { fixture.users.users[registered.ID].IsActive = false },
			input: auth.LoginInput{Login: "leia@starchive.app", Password: "alderaan-rules"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.setup != nil {
				test.setup()
			}

			_, err := fixture.service.Login(context.Background(), test.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "UNAUTHORIZED", ae.Code)
			assert.Equal(t, "Invalid login credentials", ae.Message)
		})
	}
}

/*
TestService_RefreshSession verifies refresh token rotation: the old token is
revoked and can never be replayed.
*/
func TestService_RefreshSession(t *testing.T) {
	fixture := newAuthFixture()
	fixture.register(t, "leia", "leia@starchive.app", "alderaan-rules")

	first, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "leia",
		Password: "alderaan-rules",
	})
	require.NoError(t, err)

	rotated, err := fixture.service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, 1, fixture.sessions.activeCount(), "rotation must revoke the previous session")
	assert.Equal(t, 1, fixture.index.forgotten)

	// Replaying the consumed token must fail.
	_, err = fixture.service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

/*
TestService_Logout verifies session revocation and that logging out an
unknown token is silently successful.
*/
func TestService_Logout(t *testing.T) {
	fixture := newAuthFixture()
	fixture.register(t, "leia", "leia@starchive.app", "alderaan-rules")

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "leia",
		Password: "alderaan-rules",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))
	assert.Zero(t, fixture.sessions.activeCount())
	assert.Equal(t, 1, fixture.index.forgotten)

	// Idempotent: a second logout with the same token is still fine.
	require.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))
	require.NoError(t, fixture.service.Logout(context.Background(), "never-issued"))
}

/*
TestService_PasswordReset walks the full forgot-password flow: request,
reset, session cleanup, and one-time token consumption.
*/
func TestService_PasswordReset(t *testing.T) {
	fixture := newAuthFixture()
	fixture.register(t, "leia", "leia@starchive.app", "alderaan-rules")

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "leia",
		Password: "alderaan-rules",
	})
	require.NoError(t, err)

	token, err := fixture.service.RequestPasswordReset(context.Background(), "leia@starchive.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, fixture.service.ResetPassword(context.Background(), token, "new-hope"))

	// Old credentials are dead, new ones work, all sessions are gone.
	_, err = fixture.service.Login(context.Background(), auth.LoginInput{Login: "leia", Password: "alderaan-rules"})
	require.Error(t, err)
	_, err = fixture.service.Login(context.Background(), auth.LoginInput{Login: "leia", Password: "new-hope"})
	require.NoError(t, err)
	assert.Equal(t, 1, fixture.sessions.activeCount(), "only the post-reset login session survives")

	// The token is single-use.
	err = fixture.service.ResetPassword(context.Background(), token, "again")
	require.Error(t, err)
}

/*
TestService_PasswordReset_UnknownEmail verifies the enumeration guard: an
unknown address yields no token and no error.
*/
func TestService_PasswordReset_UnknownEmail(t *testing.T) {
	fixture := newAuthFixture()

	token, err := fixture.service.RequestPasswordReset(context.Background(), "ghost@starchive.app")

	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, fixture.resets.tokens)
}

/*
TestService_ChangePassword verifies the current-password gate and that other
devices are logged out afterwards.
*/
func TestService_ChangePassword(t *testing.T) {
	fixture := newAuthFixture()
	registered := fixture.register(t, "leia", "leia@starchive.app", "alderaan-rules")

	current, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login: "leia", Password: "alderaan-rules",
	})
	require.NoError(t, err)

	other, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login: "leia", Password: "alderaan-rules",
	})
	require.NoError(t, err)

	err = fixture.service.ChangePassword(context.Background(), registered.ID, "wrong", "new-hope", current.RefreshToken)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)

	require.NoError(t, fixture.service.ChangePassword(
		context.Background(), registered.ID, "alderaan-rules", "new-hope", current.RefreshToken))

	// The current session survives, the other device is revoked.
	assert.Equal(t, 1, fixture.sessions.activeCount())
	_, err = fixture.service.RefreshSession(context.Background(), other.RefreshToken, "", "")
	require.Error(t, err)
}
