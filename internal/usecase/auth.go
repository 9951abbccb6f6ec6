package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
)

const verifyTokenTTL = 24 * time.Hour

// VerificationMailer delivers email verification messages.
type VerificationMailer interface {
	SendVerification(ctx context.Context, email, name, token string) error
}

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	mailer VerificationMailer
	logger *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, mailer VerificationMailer, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, mailer: mailer, logger: logger}
}

// Register creates a new account and returns a token pair. A verification
// email is sent best effort; delivery failures do not fail registration.
func (u *AuthUseCase) Register(ctx context.Context, email, password, name string, userType model.UserType) (*model.User, pkgAuth.TokenPair, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, pkgAuth.TokenPair{}, fmt.Errorf("%w: invalid email", domainErrors.ErrValidation)
	}
	if len(password) < 6 {
		return nil, pkgAuth.TokenPair{}, fmt.Errorf("%w: password must be at least 6 characters", domainErrors.ErrValidation)
	}
	if userType != model.UserTypeAdmin && userType != model.UserTypeClient {
		return nil, pkgAuth.TokenPair{}, fmt.Errorf("%w: unknown user type %q", domainErrors.ErrValidation, userType)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}

	token := newVerifyToken()
	expires := time.Now().Add(verifyTokenTTL)
	usr, err := u.users.Create(ctx, &model.User{
		Email:              email,
		Name:               name,
		PasswordHash:       hash,
		Type:               userType,
		VerifyToken:        &token,
		VerifyTokenExpires: &expires,
	})
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}

	if err := u.mailer.SendVerification(ctx, usr.Email, usr.Name, token); err != nil {
		u.logger.Warn("verification email not sent", slog.String("email", usr.Email), slog.String("error", err.Error()))
	}

	pair, err := u.tokens.IssuePair(usr.ID, usr.Type)
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}
	return usr, pair, nil
}

// Authenticate validates credentials and returns a token pair.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
		}
		return nil, pkgAuth.TokenPair{}, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	pair, err := u.tokens.IssuePair(usr.ID, usr.Type)
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}
	return usr, pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (u *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (pkgAuth.TokenPair, error) {
	claims, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return pkgAuth.TokenPair{}, err
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return pkgAuth.TokenPair{}, pkgAuth.ErrInvalidToken
		}
		return pkgAuth.TokenPair{}, err
	}
	return u.tokens.IssuePair(usr.ID, usr.Type)
}

// ParseAccessToken extracts identity claims from a bearer access token.
func (u *AuthUseCase) ParseAccessToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseAccess(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func newVerifyToken() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
