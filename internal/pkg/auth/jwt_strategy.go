package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

// Options tunes token lifetimes.
type Options struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// JWTStrategy signs and verifies HS256 tokens carrying user id, role and
// token kind. Refresh tokens are never accepted where access tokens are
// expected and vice versa.
type JWTStrategy struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type tokenClaims struct {
	Role model.UserType `json:"role"`
	Kind string         `json:"kind"`
	jwt.RegisteredClaims
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	accessTTL := opts.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := opts.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssuePair generates a signed access/refresh token pair for the user.
func (s *JWTStrategy) IssuePair(userID uuid.UUID, userType model.UserType) (TokenPair, error) {
	access, err := s.issue(userID, userType, tokenKindAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.issue(userID, userType, tokenKindRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseAccess validates an access token and returns its claims.
func (s *JWTStrategy) ParseAccess(token string) (*Claims, error) {
	return s.parse(token, tokenKindAccess)
}

// ParseRefresh validates a refresh token and returns its claims.
func (s *JWTStrategy) ParseRefresh(token string) (*Claims, error) {
	return s.parse(token, tokenKindRefresh)
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}

func (s *JWTStrategy) issue(userID uuid.UUID, userType model.UserType, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: userType,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTStrategy) parse(token, kind string) (*Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != kind {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Claims{UserID: userID, UserType: claims.Role}, nil
}
