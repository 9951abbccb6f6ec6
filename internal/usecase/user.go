package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// UserUseCase covers account administration and email verification.
type UserUseCase struct {
	users  repository.UserRepository
	mailer VerificationMailer
	logger *slog.Logger
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, mailer VerificationMailer, logger *slog.Logger) *UserUseCase {
	return &UserUseCase{users: users, mailer: mailer, logger: logger}
}

func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

func (u *UserUseCase) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *UserUseCase) Update(ctx context.Context, id uuid.UUID, name, email string, userType model.UserType) (*model.User, error) {
	return u.users.Update(ctx, id, name, email, userType)
}

func (u *UserUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.users.Delete(ctx, id)
}

// VerifyEmail marks the account verified when the token matches and has not
// expired.
func (u *UserUseCase) VerifyEmail(ctx context.Context, token string) error {
	usr, err := u.users.GetByVerifyToken(ctx, token)
	if err != nil {
		return err
	}
	return u.users.MarkVerified(ctx, usr.ID)
}

// ResendVerification issues a fresh verification token and emails it. Already
// verified accounts are a no-op.
func (u *UserUseCase) ResendVerification(ctx context.Context, email string) error {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if usr.EmailVerified {
		return nil
	}

	token := newVerifyToken()
	if err := u.users.SetVerifyToken(ctx, usr.ID, token, time.Now().Add(verifyTokenTTL)); err != nil {
		return err
	}
	if err := u.mailer.SendVerification(ctx, usr.Email, usr.Name, token); err != nil {
		u.logger.Warn("verification email not sent", slog.String("email", usr.Email), slog.String("error", err.Error()))
	}
	return nil
}
