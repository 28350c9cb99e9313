package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/auth"
	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/services"
	"portfolio/cmd/api/trace"
	"portfolio/internal/logger"
)

const oauthStateCookieName = "oauth_state"

type authPage struct {
	Page
	Next          string
	Email         string
	Error         string
	GoogleEnabled bool
}

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// AuthPageHandler renders the sign-in form. A signed-in visitor goes straight to next.
func AuthPageHandler(l *Layout, authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := auth.SafeNext(c.Query("next"))
		if auth.SessionFrom(c) != nil {
			c.Redirect(http.StatusFound, next)
			return
		}

		data := authPage{Page: l.page(c, "Sign in"), Next: next, GoogleEnabled: authSvc.GoogleEnabled()}
		if c.Query("error") == "google" {
			data.Error = "Google sign-in failed. Please try again."
		}
		c.HTML(http.StatusOK, "auth.html", data)
	}
}

// SignInHandler checks email/password, sets the session cookie and redirects to next.
func SignInHandler(l *Layout, authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		next := auth.SafeNext(c.PostForm("next"))

		token, session, err := authSvc.SignIn(c.Request.Context(), email, c.PostForm("password"))
		if err != nil {
			status := http.StatusUnauthorized
			msg := "Invalid email or password"
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				status = http.StatusServiceUnavailable
				msg = "Sign-in is unavailable right now. Please try again."
				logger.ErrorWithFields("sign in failed", trace.Fields(c.Request.Context(), logger.Fields{
					"error": err.Error(),
				}))
			}
			c.HTML(status, "auth.html", authPage{
				Page:          l.page(c, "Sign in"),
				Next:          next,
				Email:         email,
				Error:         msg,
				GoogleEnabled: authSvc.GoogleEnabled(),
			})
			return
		}

		auth.SetSessionCookie(c, token, authSvc.SessionTTL(), l.SecureCookies)
		logger.InfoWithFields("user signed in", trace.Fields(c.Request.Context(), logger.Fields{
			"user_id": session.UserID,
			"role":    session.Role,
		}))
		c.Redirect(http.StatusSeeOther, next)
	}
}

// SignOutHandler clears the session cookie.
func SignOutHandler(l *Layout) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearSessionCookie(c, l.SecureCookies)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// GoogleLoginHandler godoc
// @Summary      Google 로그인 시작
// @Description  state 값을 생성해 쿠키에 저장한 뒤, Google OAuth 인증 페이지로 리다이렉트합니다. Google 로그인이 설정되지 않았거나 실패하면 로그인 페이지로 이동합니다.
// @Tags         auth
// @Success      302  {string}  string  "Google OAuth 로그인 페이지 또는 로그인 페이지로 리다이렉트"
// @Router       /auth/google/login [get]
func GoogleLoginHandler(l *Layout, authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authSvc.GoogleEnabled() {
			c.Redirect(http.StatusFound, "/auth")
			return
		}

		state, err := generateState()
		if err != nil {
			logger.ErrorWithFields("google login failed to generate state", trace.Fields(c.Request.Context(), logger.Fields{
				"error": err.Error(),
			}))
			c.Redirect(http.StatusFound, "/auth?error=google")
			return
		}

		// state 를 쿠키에 저장해 CSRF 를 방지한다.
		c.SetCookie(oauthStateCookieName, state, 300, "/", "", l.SecureCookies, true)

		loginURL := authSvc.BuildGoogleLoginURL(state)
		logger.InfoWithFields("redirect to google oauth", trace.Fields(c.Request.Context(), nil))
		c.Redirect(http.StatusFound, loginURL)
	}
}

// GoogleCallbackHandler godoc
// @Summary      Google OAuth 콜백 처리
// @Description  state 값을 검증하고, code로 Google 액세스 토큰을 교환한 뒤 사용자를 업서트하고 세션 쿠키를 발급합니다.
// @Tags         auth
// @Success      302  {string}  string  "홈 또는 로그인 페이지로 리다이렉트"
// @Router       /auth/google/callback [get]
func GoogleCallbackHandler(l *Layout, authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		const failURL = "/auth?error=google"

		state := c.Query("state")
		code := c.Query("code")
		if state == "" || code == "" {
			logger.ErrorWithFields("google callback missing state or code", trace.Fields(ctx, nil))
			c.Redirect(http.StatusFound, failURL)
			return
		}

		cookieState, err := c.Cookie(oauthStateCookieName)
		if err != nil {
			logger.ErrorWithFields("google callback state cookie not found", trace.Fields(ctx, logger.Fields{
				"error": err.Error(),
			}))
			c.Redirect(http.StatusFound, failURL)
			return
		}

		// 재사용 방지를 위해 콜백 시점에 state 쿠키를 즉시 만료시킨다.
		c.SetCookie(oauthStateCookieName, "", -1, "/", "", l.SecureCookies, true)

		if cookieState != state {
			logger.ErrorWithFields("google callback invalid state", trace.Fields(ctx, nil))
			c.Redirect(http.StatusFound, failURL)
			return
		}

		token, session, err := authSvc.HandleGoogleCallback(ctx, code)
		if err != nil {
			logger.ErrorWithFields("google callback failed", trace.Fields(ctx, logger.Fields{
				"error": err.Error(),
			}))
			c.Redirect(http.StatusFound, failURL)
			return
		}

		auth.SetSessionCookie(c, token, authSvc.SessionTTL(), l.SecureCookies)
		logger.InfoWithFields("user signed in with google", trace.Fields(ctx, logger.Fields{
			"user_id": session.UserID,
			"role":    session.Role,
		}))

		dest := "/"
		if session.IsAdmin() {
			dest = "/admin"
		}
		c.Redirect(http.StatusFound, dest)
	}
}

// MeHandler godoc
// @Summary      현재 로그인한 사용자 조회
// @Description  세션 쿠키 또는 Bearer 토큰의 사용자를 반환합니다.
// @Tags         auth
// @Param        Authorization  header  string  false  "Bearer 액세스 토큰 (예: Bearer eyJ...)"
// @Produce      json
// @Success      200  {object}  dto.MeDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /auth/me [get]
func MeHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.SessionFrom(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_token"})
			return
		}

		u, err := authSvc.GetUser(c.Request.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "user_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_user"})
			return
		}

		c.JSON(http.StatusOK, dto.MeDTO{
			UserID:       u.ID.Hex(),
			Email:        u.Email,
			Name:         u.Name,
			ProfileImage: u.ProfileImage,
			Role:         u.Role,
			IsAdmin:      u.IsAdmin(),
		})
	}
}
