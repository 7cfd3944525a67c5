package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karthikc1125/simple-login/domain"
)

// Context keys set by the auth middleware.
const (
	CtxUser         = "user"
	CtxUserRole     = "user_role"
	CtxSessionToken = "session_token"
)

// AuthMW resolves bearer tokens against the session store
type AuthMW struct {
	sessions domain.SessionStore
}

// NewAuthMW creates new auth middleware
func NewAuthMW(sessions domain.SessionStore) *AuthMW {
	return &AuthMW{sessions: sessions}
}

// RequireSession rejects requests that do not carry a live session token.
// On success the session user, role, and raw token are set in the context.
func (mw *AuthMW) RequireSession() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		user, err := mw.sessions.Get(c.Request.Context(), token)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(CtxUser, user)
		c.Set(CtxUserRole, user.Role)
		c.Set(CtxSessionToken, token)
		c.Next()
	})
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// SessionUser returns the session user placed in the context by
// RequireSession.
func SessionUser(c *gin.Context) (*domain.SessionUser, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.SessionUser)
	return user, ok
}
