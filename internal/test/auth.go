package test

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn        func(uuid.UUID, model.UserType) (pkgAuth.TokenPair, error)
	ParseAccessFn  func(string) (*pkgAuth.Claims, error)
	ParseRefreshFn func(string) (*pkgAuth.Claims, error)
	NameVal        string
}

// IssuePair returns deterministic tokens for tests.
func (s StrategyStub) IssuePair(userID uuid.UUID, userType model.UserType) (pkgAuth.TokenPair, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, userType)
	}
	return pkgAuth.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

// ParseAccess parses previously issued access tokens.
func (s StrategyStub) ParseAccess(token string) (*pkgAuth.Claims, error) {
	if s.ParseAccessFn != nil {
		return s.ParseAccessFn(token)
	}
	return &pkgAuth.Claims{UserID: uuid.Nil, UserType: model.UserTypeClient}, nil
}

// ParseRefresh parses previously issued refresh tokens.
func (s StrategyStub) ParseRefresh(token string) (*pkgAuth.Claims, error) {
	if s.ParseRefreshFn != nil {
		return s.ParseRefreshFn(token)
	}
	return &pkgAuth.Claims{UserID: uuid.Nil, UserType: model.UserTypeClient}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements the middleware token parsing contract.
type TokenParserStub struct {
	Claims  *pkgAuth.Claims
	Err     error
	ParseFn func(string) (*pkgAuth.Claims, error)
}

// ParseAccessToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseAccessToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Claims != nil {
		return s.Claims, nil
	}
	return &pkgAuth.Claims{UserID: uuid.New(), UserType: model.UserTypeClient}, nil
}
