package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
)

// ClaimsContextKey is a gin context key for the authenticated identity.
const ClaimsContextKey = "authClaims"

// TokenParser validates bearer tokens for the auth middleware.
type TokenParser interface {
	ParseAccessToken(token string) (*pkgAuth.Claims, error)
}

// AuthRequired ensures the request carries a valid access token.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := parser.ParseAccessToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// AdminRequired rejects requests whose identity is not an ADMIN account.
// It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ClaimsContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, ok := val.(*pkgAuth.Claims)
		if !ok || claims.UserType != model.UserTypeAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
