package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"portfolio/cmd/api/auth"
	"portfolio/models"
	"portfolio/repositories"
)

// GoogleOAuth is the part of *auth.GoogleOAuthClient the sign-in flow uses.
type GoogleOAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUserInfo(ctx context.Context, token *oauth2.Token) (auth.GoogleUserInfo, error)
}

type AuthService struct {
	users       UserStore
	jwtManager  *auth.JWTManager
	googleOAuth GoogleOAuth
}

// NewAuthService wires sign-in. googleOAuth may be nil, which disables Google sign-in.
func NewAuthService(users UserStore, jwtManager *auth.JWTManager, googleOAuth GoogleOAuth) *AuthService {
	return &AuthService{
		users:       users,
		jwtManager:  jwtManager,
		googleOAuth: googleOAuth,
	}
}

func (s *AuthService) GoogleEnabled() bool { return s.googleOAuth != nil }

func (s *AuthService) SessionTTL() time.Duration { return s.jwtManager.TTL() }

// SignIn checks email/password credentials and issues a session token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *auth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, auth.ErrInvalidCredentials
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, auth.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return "", nil, err
	}
	return s.IssueSession(u)
}

// IssueSession signs a token carrying the user's id, email and role.
func (s *AuthService) IssueSession(u *models.User) (string, *auth.Session, error) {
	token, err := s.jwtManager.Sign(u.ID.Hex(), u.Email, u.Role)
	if err != nil {
		return "", nil, fmt.Errorf("jwt sign: %w", err)
	}
	return token, &auth.Session{UserID: u.ID.Hex(), Email: u.Email, Role: u.Role}, nil
}

func (s *AuthService) ParseSession(token string) (*auth.Session, error) {
	return s.jwtManager.Parse(token)
}

func (s *AuthService) BuildGoogleLoginURL(state string) string {
	return s.googleOAuth.AuthCodeURL(state)
}

// HandleGoogleCallback exchanges the code, upserts the user by email and issues a session.
// An existing user's role is kept; new users start without admin rights.
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code string) (string, *auth.Session, error) {
	if s.googleOAuth == nil {
		return "", nil, errors.New("google sign-in is not configured")
	}

	token, err := s.googleOAuth.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("google oauth exchange: %w", err)
	}

	info, err := s.googleOAuth.FetchUserInfo(ctx, token)
	if err != nil {
		return "", nil, fmt.Errorf("google userinfo: %w", err)
	}
	if info.Email == "" {
		return "", nil, errors.New("google userinfo: missing email")
	}

	u, err := s.users.UpsertByEmail(ctx, &models.User{
		Email:        info.Email,
		Name:         info.Name,
		Provider:     "google",
		ProviderSub:  info.Sub,
		ProfileImage: info.Picture,
	})
	if err != nil {
		return "", nil, fmt.Errorf("user upsert: %w", err)
	}
	return s.IssueSession(u)
}

// GetUser loads the user behind a session.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	return u, nil
}

// CreateUser registers a password user. Used by the operator CLI.
func (s *AuthService) CreateUser(ctx context.Context, email, name, password string, admin bool) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) < 8 {
		return "", errors.New("email and a password of at least 8 characters are required")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	role := models.RoleUser
	if admin {
		role = models.RoleAdmin
	}
	id, err := s.users.Insert(ctx, &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Provider:     "password",
		Role:         role,
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		return "", fmt.Errorf("user %s already exists", email)
	}
	return id, err
}

// Promote grants the admin role to an existing user.
func (s *AuthService) Promote(ctx context.Context, email string) error {
	return mapNotFound(s.users.SetRole(ctx, email, models.RoleAdmin), ErrUserNotFound)
}

// FindByEmail resolves a user by email, e.g. the author of imported posts.
func (s *AuthService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	return u, nil
}
