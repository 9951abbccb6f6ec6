package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is the customer profile attached to a CLIENT user.
type Client struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FullName  string
	Contact   string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
