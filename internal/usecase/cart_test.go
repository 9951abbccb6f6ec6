package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	testhelpers "github.com/shopworks/storefront/internal/test"
)

func TestCartUseCaseAddValidation(t *testing.T) {
	uc := NewCartUseCase(&testhelpers.CartRepositoryStub{})

	for _, quantity := range []int{0, -1} {
		if _, err := uc.Add(context.Background(), uuid.New(), uuid.New(), quantity); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("expected validation error for quantity %d, got %v", quantity, err)
		}
	}
}

func TestCartUseCaseAddPassesThrough(t *testing.T) {
	repo := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(repo)

	clientID, productID := uuid.New(), uuid.New()
	item, err := uc.Add(context.Background(), clientID, productID, 3)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if item.ClientID != clientID || item.ProductID != productID || item.Quantity != 3 {
		t.Fatalf("unexpected cart item %+v", item)
	}
}

func TestCartUseCaseAddInsufficientStock(t *testing.T) {
	repo := &testhelpers.CartRepositoryStub{
		AddFn: func(context.Context, uuid.UUID, uuid.UUID, int) (*model.CartItem, error) {
			return nil, domainErrors.ErrInsufficientStock
		},
	}
	uc := NewCartUseCase(repo)

	if _, err := uc.Add(context.Background(), uuid.New(), uuid.New(), 5); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
}

func TestCartUseCaseUpdateQuantityValidation(t *testing.T) {
	uc := NewCartUseCase(&testhelpers.CartRepositoryStub{})

	if _, err := uc.UpdateQuantity(context.Background(), uuid.New(), uuid.New(), 0); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCartUseCaseTotal(t *testing.T) {
	clientID := uuid.New()
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	repo := &testhelpers.CartRepositoryStub{
		Items: []model.CartItem{
			{ClientID: clientID, Quantity: 2, Product: &model.Product{Price: price("19.99")}},
			{ClientID: clientID, Quantity: 1, Product: &model.Product{Price: price("0.01")}},
			{ClientID: uuid.New(), Quantity: 9, Product: &model.Product{Price: price("100")}},
		},
	}
	uc := NewCartUseCase(repo)

	total, err := uc.Total(context.Background(), clientID)
	if err != nil {
		t.Fatalf("total returned error: %v", err)
	}
	if want := price("39.99"); !total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, total)
	}
}

func TestCartUseCaseTotalEmptyCart(t *testing.T) {
	uc := NewCartUseCase(&testhelpers.CartRepositoryStub{})

	total, err := uc.Total(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("total returned error: %v", err)
	}
	if !total.IsZero() {
		t.Fatalf("expected zero total, got %s", total)
	}
}
