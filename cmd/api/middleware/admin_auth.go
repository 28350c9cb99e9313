package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/auth"
	"portfolio/cmd/api/services"
	"portfolio/cmd/api/trace"
	"portfolio/internal/logger"
)

// AdminAuthMiddleware 는 요청의 JWT(헤더 또는 세션 쿠키)를 검증하고, role이 'admin'인지 확인합니다.
func AdminAuthMiddleware(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		s, err := authSvc.ParseSession(token)
		if err != nil {
			logger.WarnWithFields("token parse error", trace.Fields(c.Request.Context(), logger.Fields{
				"error": err.Error(),
			}))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if !s.IsAdmin() {
			logger.WarnWithFields("access denied", trace.Fields(c.Request.Context(), logger.Fields{
				"user_id": s.UserID,
				"role":    s.Role,
			}))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		auth.WithSession(c, s)
		c.Next()
	}
}

// RequireAdminPage gates the server-rendered admin screens. Anonymous visitors are
// sent to the sign-in page; signed-in non-admins get denied, and nothing downstream runs.
func RequireAdminPage(denied gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := auth.SessionFrom(c)
		if s == nil {
			c.Redirect(http.StatusFound, auth.SignInURL(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		if !s.IsAdmin() {
			denied(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
