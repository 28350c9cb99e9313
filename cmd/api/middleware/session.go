package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/auth"
	"portfolio/cmd/api/services"
)

// Session resolves the caller's session from the bearer token or session cookie.
// Requests without a valid token continue anonymously.
func Session(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c)
		if err == nil {
			if s, perr := authSvc.ParseSession(token); perr == nil {
				auth.WithSession(c, s)
			}
		}
		c.Next()
	}
}
