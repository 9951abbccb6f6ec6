package model

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes administrative accounts from customer-facing ones.
type UserType string

const (
	UserTypeAdmin  UserType = "ADMIN"
	UserTypeClient UserType = "CLIENT"
)

// User represents a registered account.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	Type               UserType
	EmailVerified      bool
	VerifyToken        *string
	VerifyTokenExpires *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
