package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/response"
)

// contextKey is the gin context key under which the resolved caller is
// stored. It is private so handlers go through CallerFrom instead of
// reading the raw context value.
const contextKey = "ecotrack/current_user"

// UserResolver resolves a token subject to a live user record
type UserResolver interface {
	GetByID(id string) (*user.User, error)
}

// Protect verifies the bearer token, resolves the caller and stores a typed
// CurrentUser in the request context. Requests without a valid credential
// are rejected with 401.
func Protect(tokens *auth.TokenService, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Resolve against the store so disabled accounts and role changes
		// take effect without waiting for token expiry.
		u, err := users.GetByID(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		SetCaller(c, auth.CurrentUser{ID: u.ID, Role: u.Role})
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set with 403.
// It must run after Protect.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "insufficient role")
		c.Abort()
	}
}

// SetCaller stores the caller identity for downstream handlers
func SetCaller(c *gin.Context, caller auth.CurrentUser) {
	c.Set(contextKey, caller)
}

// CallerFrom returns the caller identity stored by Protect
func CallerFrom(c *gin.Context) (auth.CurrentUser, bool) {
	value, exists := c.Get(contextKey)
	if !exists {
		return auth.CurrentUser{}, false
	}

	caller, ok := value.(auth.CurrentUser)
	return caller, ok
}
