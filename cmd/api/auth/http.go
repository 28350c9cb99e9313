package auth

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// SessionCookieName 은 브라우저 세션 JWT 를 담는 쿠키 이름이다.
const SessionCookieName = "session"

// ExtractBearerToken extracts the Bearer token from the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// ExtractToken prefers the Authorization header and falls back to the session cookie.
func ExtractToken(c *gin.Context) (string, error) {
	token, err := ExtractBearerToken(c)
	if err == nil || !errors.Is(err, ErrMissingHeader) {
		return token, err
	}
	if v, cerr := c.Cookie(SessionCookieName); cerr == nil && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	return "", ErrMissingHeader
}

// SetSessionCookie writes the session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

// AbortWithUnauthorized aborts the request with 401 status and error JSON.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}

// SignInURL is the sign-in page that returns to next afterwards.
func SignInURL(next string) string {
	return "/auth?next=" + url.QueryEscape(SafeNext(next))
}

// SafeNext keeps only same-site absolute paths; anything else becomes "/".
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
