package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

// OrderLine is a requested (product, quantity) pair for order creation.
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderRepository describes persistence operations with orders.
//
// Create, ConfirmPayment and UpdateStatus run as single transactions: the
// status write and every stock mutation commit together or not at all.
type OrderRepository interface {
	Create(ctx context.Context, clientID uuid.UUID, lines []OrderLine) (*model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Order, error)
	ConfirmPayment(ctx context.Context, orderID uuid.UUID, payment model.PaymentStatus) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error)
}
