package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/f1rstgear/gearflow/internal/pkg/auth"
	"github.com/f1rstgear/gearflow/internal/usecase"
)

const (
	// OperatorIDContextKey is a gin context key for the authenticated operator.
	OperatorIDContextKey = "operatorID"
	authCookieName       = "gearflow_token"
)

// AuthChecker is the slice of the facade the auth middleware needs.
type AuthChecker interface {
	AuthEnabled() bool
	ParseToken(token string) (int64, error)
}

// AuthRequired ensures the operator is authenticated before reaching a
// handler. When no operator credential is configured, authentication is
// disabled and every request runs as the default operator.
func AuthRequired(auth AuthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.AuthEnabled() {
			c.Set(OperatorIDContextKey, usecase.DefaultOperatorID)
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		operatorID, err := auth.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(OperatorIDContextKey, operatorID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
