package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// ProductUseCase manages the catalog.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

func (u *ProductUseCase) Create(ctx context.Context, name, description string, price decimal.Decimal, stock int) (*model.Product, error) {
	if err := validateProduct(name, price, stock); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, &model.Product{Name: name, Description: description, Price: price, Stock: stock})
}

func (u *ProductUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Update replaces the mutable product fields.
func (u *ProductUseCase) Update(ctx context.Context, id uuid.UUID, name, description string, price decimal.Decimal, stock int) (*model.Product, error) {
	if err := validateProduct(name, price, stock); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, &model.Product{ID: id, Name: name, Description: description, Price: price, Stock: stock})
}

func (u *ProductUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.products.Delete(ctx, id)
}

func validateProduct(name string, price decimal.Decimal, stock int) error {
	if name == "" {
		return fmt.Errorf("%w: product name is required", domainErrors.ErrValidation)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domainErrors.ErrValidation)
	}
	return nil
}
