package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a (client, product) pair with a desired quantity. It is not a
// reservation: stock is checked at mutation time but never decremented here.
type CartItem struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Product   *Product
	CreatedAt time.Time
	UpdatedAt time.Time
}
