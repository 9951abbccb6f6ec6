package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// ClientUseCase manages customer profiles.
type ClientUseCase struct {
	clients repository.ClientRepository
}

// NewClientUseCase constructs ClientUseCase.
func NewClientUseCase(clients repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

func (u *ClientUseCase) Create(ctx context.Context, userID uuid.UUID, fullName, contact, address string) (*model.Client, error) {
	return u.clients.Create(ctx, &model.Client{UserID: userID, FullName: fullName, Contact: contact, Address: address})
}

func (u *ClientUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return u.clients.GetByID(ctx, id)
}

// GetByUserID resolves the client profile owned by a user.
func (u *ClientUseCase) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Client, error) {
	return u.clients.GetByUserID(ctx, userID)
}

// List returns client profiles, optionally filtered by name.
func (u *ClientUseCase) List(ctx context.Context, name string) ([]model.Client, error) {
	return u.clients.List(ctx, name)
}

func (u *ClientUseCase) Update(ctx context.Context, id uuid.UUID, fullName, contact, address string) (*model.Client, error) {
	return u.clients.Update(ctx, id, fullName, contact, address)
}

func (u *ClientUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.clients.Delete(ctx, id)
}
