package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthikc1125/simple-login/domain"
)

// CasbinMiddleware defines the interface for Casbin authorization middleware
type CasbinMiddleware interface {
	Enforce() gin.HandlerFunc
}

// CasbinMW enforces role-based policies on authenticated routes. Policies
// are keyed on "role_<role>", the parameterized route path, and the HTTP
// method.
type CasbinMW struct {
	policies domain.PolicyService
}

// NewCasbinMW creates a new Casbin authorization middleware
func NewCasbinMW(policies domain.PolicyService) *CasbinMW {
	return &CasbinMW{policies: policies}
}

// Enforce returns the authorization middleware. It must run after
// RequireSession so the role is in the context.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		role, ok := c.Get(CtxUserRole)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed, err := mw.policies.CheckPermission("role_"+role.(string), path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}

var _ CasbinMiddleware = (*CasbinMW)(nil)
