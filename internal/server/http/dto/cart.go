package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartAddRequest puts a product into the cart.
type CartAddRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// CartUpdateRequest sets the absolute quantity of a cart line.
type CartUpdateRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartItemResponse is one cart line with its product snapshot.
type CartItemResponse struct {
	ID       uuid.UUID        `json:"id"`
	Quantity int              `json:"quantity"`
	Product  *ProductResponse `json:"product,omitempty"`
	Subtotal decimal.Decimal  `json:"subtotal"`
}

// CartResponse is the full cart with its running total.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}
