package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	testhelpers "github.com/shopworks/storefront/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID uuid.UUID, userType model.UserType) (pkgAuth.TokenPair, error) {
			return pkgAuth.TokenPair{
				AccessToken:  "access-" + userID.String(),
				RefreshToken: "refresh-" + userID.String(),
			}, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	mailer := &testhelpers.MailerStub{}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), mailer, testLogger())

	ctx := context.Background()
	user, pair, err := uc.Register(ctx, "alice@example.com", "password", "Alice", model.UserTypeClient)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Fatalf("expected user to have ID assigned")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.VerifyToken == nil {
		t.Fatalf("expected verification token to be set")
	}
	if len(*stored.VerifyToken) != 64 {
		t.Fatalf("expected 32 random bytes hex-encoded, got %d chars", len(*stored.VerifyToken))
	}
	sent := mailer.Sent()
	if len(sent) != 1 || sent[0].Token != *stored.VerifyToken {
		t.Fatalf("verification mail not sent with stored token: %+v", sent)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), &testhelpers.MailerStub{}, testLogger())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "bob@example.com", "secret1", "Bob", model.UserTypeClient); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "bob@example.com", "secret1", "Bob", model.UserTypeClient); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub(), &testhelpers.MailerStub{}, testLogger())

	cases := []struct {
		name     string
		email    string
		password string
		userType model.UserType
	}{
		{"bad email", "not-an-email", "password", model.UserTypeClient},
		{"empty email", "", "password", model.UserTypeClient},
		{"short password", "dave@example.com", "12345", model.UserTypeClient},
		{"unknown type", "dave@example.com", "password", model.UserType("ROOT")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.email, tc.password, "Dave", tc.userType); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseRegisterMailFailureIsNotFatal(t *testing.T) {
	mailer := &testhelpers.MailerStub{Err: fmt.Errorf("smtp down")}
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub(), mailer, testLogger())

	if _, _, err := uc.Register(context.Background(), "eve@example.com", "password", "Eve", model.UserTypeClient); err != nil {
		t.Fatalf("register must succeed despite mail failure, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), &testhelpers.MailerStub{}, testLogger())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "carol@example.com", "123456", "Carol", model.UserTypeClient); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@example.com", "123456"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}

	user, pair, err := uc.Authenticate(ctx, "carol@example.com", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if pair.AccessToken != "access-"+user.ID.String() {
		t.Fatalf("unexpected access token %q", pair.AccessToken)
	}
}

func TestAuthUseCaseRefresh(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	ctx := context.Background()

	strategy := newStrategyStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy, &testhelpers.MailerStub{}, testLogger())
	user, _, err := uc.Register(ctx, "frank@example.com", "password", "Frank", model.UserTypeClient)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	strategy.ParseRefreshFn = func(token string) (*pkgAuth.Claims, error) {
		if token != "refresh-"+user.ID.String() {
			return nil, pkgAuth.ErrInvalidToken
		}
		return &pkgAuth.Claims{UserID: user.ID, UserType: user.Type}, nil
	}
	uc = NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy, &testhelpers.MailerStub{}, testLogger())

	pair, err := uc.Refresh(ctx, "refresh-"+user.ID.String())
	if err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}
	if pair.AccessToken != "access-"+user.ID.String() {
		t.Fatalf("unexpected access token %q", pair.AccessToken)
	}

	if _, err := uc.Refresh(ctx, "garbage"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseRefreshDeletedUser(t *testing.T) {
	strategy := testhelpers.StrategyStub{
		ParseRefreshFn: func(string) (*pkgAuth.Claims, error) {
			return &pkgAuth.Claims{UserID: uuid.New(), UserType: model.UserTypeClient}, nil
		},
	}
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, strategy, &testhelpers.MailerStub{}, testLogger())

	if _, err := uc.Refresh(context.Background(), "refresh"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token for deleted user, got %v", err)
	}
}

func TestAuthUseCaseParseAccessToken(t *testing.T) {
	id := uuid.New()
	strategy := testhelpers.StrategyStub{
		ParseAccessFn: func(token string) (*pkgAuth.Claims, error) {
			if token != "good" {
				return nil, pkgAuth.ErrInvalidToken
			}
			return &pkgAuth.Claims{UserID: id, UserType: model.UserTypeAdmin}, nil
		},
	}
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, strategy, &testhelpers.MailerStub{}, testLogger())

	claims, err := uc.ParseAccessToken("good")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != id || claims.UserType != model.UserTypeAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := uc.ParseAccessToken("bad"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := uc.ParseAccessToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
