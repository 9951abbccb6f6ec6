package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	testhelpers "github.com/shopworks/storefront/internal/test"
)

func TestUserUseCaseVerifyEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()

	token := "verify-token"
	expires := time.Now().Add(time.Hour)
	user, err := repo.Create(ctx, &model.User{
		Email:              "grace@example.com",
		Type:               model.UserTypeClient,
		VerifyToken:        &token,
		VerifyTokenExpires: &expires,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	uc := NewUserUseCase(repo, &testhelpers.MailerStub{}, testLogger())
	if err := uc.VerifyEmail(ctx, token); err != nil {
		t.Fatalf("verify returned error: %v", err)
	}

	stored, _ := repo.GetByID(ctx, user.ID)
	if !stored.EmailVerified || stored.VerifyToken != nil {
		t.Fatalf("expected verified user with cleared token, got %+v", stored)
	}

	if err := uc.VerifyEmail(ctx, token); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for consumed token, got %v", err)
	}
}

func TestUserUseCaseVerifyEmailExpiredToken(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()

	token := "stale-token"
	expires := time.Now().Add(-time.Minute)
	if _, err := repo.Create(ctx, &model.User{
		Email:              "heidi@example.com",
		Type:               model.UserTypeClient,
		VerifyToken:        &token,
		VerifyTokenExpires: &expires,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	uc := NewUserUseCase(repo, &testhelpers.MailerStub{}, testLogger())
	if err := uc.VerifyEmail(ctx, token); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for expired token, got %v", err)
	}
}

func TestUserUseCaseResendVerification(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &model.User{Email: "ivan@example.com", Name: "Ivan", Type: model.UserTypeClient}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	mailer := &testhelpers.MailerStub{}
	uc := NewUserUseCase(repo, mailer, testLogger())
	if err := uc.ResendVerification(ctx, "ivan@example.com"); err != nil {
		t.Fatalf("resend returned error: %v", err)
	}

	stored, _ := repo.GetByEmail(ctx, "ivan@example.com")
	if stored.VerifyToken == nil {
		t.Fatalf("expected fresh token to be stored")
	}
	sent := mailer.Sent()
	if len(sent) != 1 || sent[0].Token != *stored.VerifyToken {
		t.Fatalf("expected mail with stored token, got %+v", sent)
	}
}

func TestUserUseCaseResendVerificationAlreadyVerified(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()

	user, err := repo.Create(ctx, &model.User{Email: "judy@example.com", Type: model.UserTypeClient})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := repo.MarkVerified(ctx, user.ID); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	mailer := &testhelpers.MailerStub{}
	uc := NewUserUseCase(repo, mailer, testLogger())
	if err := uc.ResendVerification(ctx, "judy@example.com"); err != nil {
		t.Fatalf("resend returned error: %v", err)
	}
	if len(mailer.Sent()) != 0 {
		t.Fatalf("no mail expected for verified account")
	}
}
