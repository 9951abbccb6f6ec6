package dto

import (
	"time"

	"github.com/google/uuid"
)

// ClientRequest describes a new client profile and the account it belongs to.
type ClientRequest struct {
	UserID   uuid.UUID `json:"userId" binding:"required"`
	FullName string    `json:"fullName" binding:"required"`
	Contact  string    `json:"contact" binding:"required"`
	Address  string    `json:"address" binding:"required"`
}

// ClientUpdateRequest describes mutable client profile fields.
type ClientUpdateRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

// ClientResponse is the public representation of a client profile.
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FullName  string    `json:"fullName"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
