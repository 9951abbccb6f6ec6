package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

func TestNewJWTStrategy_DefaultTTLs(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy.accessTTL != 15*time.Minute {
		t.Fatalf("unexpected access ttl: %s", strategy.accessTTL)
	}
	if strategy.refreshTTL != 7*24*time.Hour {
		t.Fatalf("unexpected refresh ttl: %s", strategy.refreshTTL)
	}
}

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{AccessTTL: time.Minute, RefreshTTL: time.Hour})
	userID := uuid.New()

	pair, err := strategy.IssuePair(userID, model.UserTypeClient)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}

	claims, err := strategy.ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.UserType != model.UserTypeClient {
		t.Fatalf("unexpected user type: %s", claims.UserType)
	}

	claims, err = strategy.ParseRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
}

func TestJWTStrategy_KindsAreNotInterchangeable(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	pair, err := strategy.IssuePair(uuid.New(), model.UserTypeAdmin)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	if _, err := strategy.ParseAccess(pair.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for refresh-as-access, got %v", err)
	}
	if _, err := strategy.ParseRefresh(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access-as-refresh, got %v", err)
	}
}

func TestJWTStrategy_ParseGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if _, err := strategy.ParseAccess("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_WrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{})
	verifier := NewJWTStrategy("secret-b", Options{})

	pair, err := issuer.IssuePair(uuid.New(), model.UserTypeClient)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if _, err := verifier.ParseAccess(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_Expired(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{AccessTTL: -time.Minute, RefreshTTL: time.Hour})
	pair, err := strategy.IssuePair(uuid.New(), model.UserTypeClient)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if _, err := strategy.ParseAccess(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	if NewJWTStrategy("secret", Options{}).Name() != "jwt" {
		t.Fatal("unexpected strategy name")
	}
}
