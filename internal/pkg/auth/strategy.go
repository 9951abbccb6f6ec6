package auth

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// TokenPair is a bearer access token plus the refresh token used to renew it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Claims carries the authenticated identity extracted from a token.
type Claims struct {
	UserID   uuid.UUID
	UserType model.UserType
}

// Strategy defines token issuing and verification.
type Strategy interface {
	IssuePair(userID uuid.UUID, userType model.UserType) (TokenPair, error)
	ParseAccess(token string) (*Claims, error)
	ParseRefresh(token string) (*Claims, error)
	Name() string
}
