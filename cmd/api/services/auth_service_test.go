package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"portfolio/cmd/api/auth"
	"portfolio/models"
)

type fakeGoogle struct {
	info auth.GoogleUserInfo
}

func (f *fakeGoogle) AuthCodeURL(state string) string { return "https://accounts.example/auth?state=" + state }
func (f *fakeGoogle) Exchange(context.Context, string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "at"}, nil
}
func (f *fakeGoogle) FetchUserInfo(context.Context, *oauth2.Token) (auth.GoogleUserInfo, error) {
	return f.info, nil
}

func newTestAuthService(users UserStore, google GoogleOAuth) *AuthService {
	return NewAuthService(users, auth.NewJWTManager("test-secret", "portfolio", time.Hour), google)
}

func TestAuthServiceSignIn(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users, nil)

	_, err := svc.CreateUser(context.Background(), "owner@example.com", "Owner", "correct-horse", true)
	require.NoError(t, err)

	token, session, err := svc.SignIn(context.Background(), "owner@example.com", "correct-horse")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())

	parsed, err := svc.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, parsed.UserID)
	assert.Equal(t, "owner@example.com", parsed.Email)

	_, _, err = svc.SignIn(context.Background(), "owner@example.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, _, err = svc.SignIn(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, _, err = svc.SignIn(context.Background(), "", "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthServiceCreateUserRules(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), nil)

	_, err := svc.CreateUser(context.Background(), "a@b.co", "", "short", false)
	assert.Error(t, err)

	_, err = svc.CreateUser(context.Background(), "a@b.co", "", "long-enough", false)
	require.NoError(t, err)
	_, err = svc.CreateUser(context.Background(), "a@b.co", "", "long-enough", false)
	assert.Error(t, err)

	assert.ErrorIs(t, svc.Promote(context.Background(), "nobody@b.co"), ErrUserNotFound)
	require.NoError(t, svc.Promote(context.Background(), "a@b.co"))
	_, session, err := svc.SignIn(context.Background(), "a@b.co", "long-enough")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
}

func TestAuthServiceGoogleCallbackKeepsRole(t *testing.T) {
	users := newFakeUserStore()
	users.users["owner@example.com"] = &models.User{Email: "owner@example.com", Role: models.RoleAdmin}
	google := &fakeGoogle{info: auth.GoogleUserInfo{Sub: "g-1", Email: "owner@example.com", Name: "Owner"}}
	svc := newTestAuthService(users, google)
	require.True(t, svc.GoogleEnabled())

	_, session, err := svc.HandleGoogleCallback(context.Background(), "code")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())

	google.info = auth.GoogleUserInfo{Sub: "g-2", Email: "visitor@example.com"}
	_, session, err = svc.HandleGoogleCallback(context.Background(), "code")
	require.NoError(t, err)
	assert.False(t, session.IsAdmin())

	google.info = auth.GoogleUserInfo{Sub: "g-3"}
	_, _, err = svc.HandleGoogleCallback(context.Background(), "code")
	assert.Error(t, err)
}

func TestAuthServiceGoogleDisabled(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), nil)
	assert.False(t, svc.GoogleEnabled())
	_, _, err := svc.HandleGoogleCallback(context.Background(), "code")
	assert.Error(t, err)

	_, err = svc.GetUser(context.Background(), "000000000000000000000000")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
