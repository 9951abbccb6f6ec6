package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, name, email string, userType model.UserType) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByVerifyToken(ctx context.Context, token string) (*model.User, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
	SetVerifyToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error
}
