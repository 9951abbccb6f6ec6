package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// CartUseCase manages per-client shopping carts.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// Add puts quantity units of a product into the cart, merging with an
// existing line for the same product.
func (u *CartUseCase) Add(ctx context.Context, clientID, productID uuid.UUID, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrValidation)
	}
	return u.carts.Add(ctx, clientID, productID, quantity)
}

// UpdateQuantity sets the absolute quantity of an existing cart line.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, clientID, itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrValidation)
	}
	return u.carts.UpdateQuantity(ctx, clientID, itemID, quantity)
}

func (u *CartUseCase) Remove(ctx context.Context, clientID, itemID uuid.UUID) error {
	return u.carts.Remove(ctx, clientID, itemID)
}

func (u *CartUseCase) Clear(ctx context.Context, clientID uuid.UUID) error {
	return u.carts.Clear(ctx, clientID)
}

func (u *CartUseCase) List(ctx context.Context, clientID uuid.UUID) ([]model.CartItem, error) {
	return u.carts.ListByClient(ctx, clientID)
}

// Total sums price times quantity over the cart lines.
func (u *CartUseCase) Total(ctx context.Context, clientID uuid.UUID) (decimal.Decimal, error) {
	items, err := u.carts.ListByClient(ctx, clientID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
