package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is one requested (product, quantity) pair.
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// OrderCreateRequest places an order from explicit lines.
type OrderCreateRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required"`
}

// PaymentRequest reports the payment provider decision.
type PaymentRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderStatusRequest moves the order along its lifecycle.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse is one immutable order line.
type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the public representation of an order.
type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	ClientID  uuid.UUID           `json:"clientId"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	OrderDate time.Time           `json:"orderDate"`
}
