package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/server/http/middleware"
)

// CurrentClaims extracts the authenticated identity from context.
func CurrentClaims(c *gin.Context) *pkgAuth.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := val.(*pkgAuth.Claims)
	return claims
}

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) uuid.UUID {
	claims := CurrentClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	return claims.UserID
}

// IsAdmin reports whether the authenticated identity is an ADMIN account.
func IsAdmin(c *gin.Context) bool {
	claims := CurrentClaims(c)
	return claims != nil && claims.UserType == model.UserTypeAdmin
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
