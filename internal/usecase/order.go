package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// OrderUseCase drives order placement and the delivery state machine.
type OrderUseCase struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, carts repository.CartRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, carts: carts}
}

// Create places an order from explicit lines. Stock is checked but not
// reserved; the decrement happens on payment confirmation.
func (u *OrderUseCase) Create(ctx context.Context, clientID uuid.UUID, lines []repository.OrderLine) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrValidation)
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrValidation)
		}
	}
	return u.orders.Create(ctx, clientID, lines)
}

// CreateFromCart places an order from the client's current cart and clears
// the cart on success.
func (u *OrderUseCase) CreateFromCart(ctx context.Context, clientID uuid.UUID) (*model.Order, error) {
	items, err := u.carts.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domainErrors.ErrValidation)
	}

	lines := make([]repository.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, repository.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := u.orders.Create(ctx, clientID, lines)
	if err != nil {
		return nil, err
	}
	if err := u.carts.Clear(ctx, clientID); err != nil {
		return nil, err
	}
	return order, nil
}

func (u *OrderUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

func (u *OrderUseCase) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Order, error) {
	return u.orders.ListByClient(ctx, clientID)
}

// ConfirmPayment applies a payment decision to a received order. A confirmed
// payment deducts stock and moves the order to preparation; a declined one
// cancels it.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, id uuid.UUID, status model.PaymentStatus) (*model.Order, error) {
	if status != model.PaymentStatusConfirmed && status != model.PaymentStatusDeclined {
		return nil, fmt.Errorf("%w: unknown payment status %q", domainErrors.ErrValidation, status)
	}
	return u.orders.ConfirmPayment(ctx, id, status)
}

// UpdateStatus advances the order along the delivery state machine.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", domainErrors.ErrValidation, status)
	}
	return u.orders.UpdateStatus(ctx, id, status)
}

// Cancel moves the order to CANCELLED, restoring stock for orders whose
// payment was already confirmed.
func (u *OrderUseCase) Cancel(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return u.orders.UpdateStatus(ctx, id, model.OrderStatusCancelled)
}
