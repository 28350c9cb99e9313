package auth

import "github.com/gin-gonic/gin"

// Session is the signed-in identity of one request. Anonymous requests carry none.
type Session struct {
	UserID string
	Email  string
	Role   string
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

const sessionContextKey = "auth.session"

// WithSession stores the resolved session on the request context.
func WithSession(c *gin.Context, s *Session) {
	if s != nil {
		c.Set(sessionContextKey, s)
	}
}

// SessionFrom returns the request's session, or nil when anonymous.
func SessionFrom(c *gin.Context) *Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}
