package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

// ClientRepository describes persistence operations for client profiles.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) (*model.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Client, error)
	List(ctx context.Context, name string) ([]model.Client, error)
	Update(ctx context.Context, id uuid.UUID, fullName, contact, address string) (*model.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
