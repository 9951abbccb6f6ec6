package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

// CartRepository describes persistence operations for cart items.
//
// Add and UpdateQuantity validate against live stock inside a transaction and
// fail with ErrInsufficientStock when the requested quantity exceeds it.
type CartRepository interface {
	Add(ctx context.Context, clientID, productID uuid.UUID, quantity int) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, clientID, itemID uuid.UUID, quantity int) (*model.CartItem, error)
	Remove(ctx context.Context, clientID, itemID uuid.UUID) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.CartItem, error)
	Clear(ctx context.Context, clientID uuid.UUID) error
}
