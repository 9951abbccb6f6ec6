package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle stage.
type OrderStatus string

const (
	OrderStatusReceived      OrderStatus = "RECEIVED"
	OrderStatusInPreparation OrderStatus = "IN_PREPARATION"
	OrderStatusDispatched    OrderStatus = "DISPATCHED"
	OrderStatusDelivered     OrderStatus = "DELIVERED"
	OrderStatusCancelled     OrderStatus = "CANCELLED"
)

// validTransitions is the full lifecycle table. DELIVERED and CANCELLED are
// terminal; CANCELLED is reachable from every non-terminal state.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusReceived:      {OrderStatusInPreparation, OrderStatusCancelled},
	OrderStatusInPreparation: {OrderStatusDispatched, OrderStatusCancelled},
	OrderStatusDispatched:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:     {},
	OrderStatusCancelled:     {},
}

// IsValid reports whether the value is a known status.
func (s OrderStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransition reports whether moving to next is allowed by the lifecycle table.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus is the outcome reported by the payment provider.
type PaymentStatus string

const (
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusDeclined  PaymentStatus = "DECLINED"
)

// OrderItem is an immutable order line. UnitPrice is captured at creation
// time and never follows later product price changes.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Order is an immutable snapshot of purchased items. Only Status changes
// after creation.
type Order struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Status    OrderStatus
	Total     decimal.Decimal
	Items     []OrderItem
	OrderDate time.Time
	UpdatedAt time.Time
}
