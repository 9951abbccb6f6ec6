package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
)

type cartRepository struct {
	storage *Storage
}

// Add upserts a cart item. The product row is locked so the stock check and
// the quantity write cannot race a concurrent add for the same product.
func (r *cartRepository) Add(ctx context.Context, clientID, productID uuid.UUID, quantity int) (*model.CartItem, error) {
	var item *model.CartItem
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		product, err := lockProduct(ctx, tx, productID)
		if err != nil {
			return err
		}
		if product.Stock < quantity {
			return insufficientStock(product, quantity)
		}

		var (
			existingID  uuid.UUID
			existingQty int
		)
		err = tx.QueryRow(ctx, `SELECT id, quantity FROM cart_items WHERE client_id=$1 AND product_id=$2 FOR UPDATE`, clientID, productID).
			Scan(&existingID, &existingQty)
		switch {
		case err == nil:
			newQuantity := existingQty + quantity
			if product.Stock < newQuantity {
				return insufficientStock(product, newQuantity)
			}
			item = &model.CartItem{ID: existingID, ClientID: clientID, ProductID: productID, Quantity: newQuantity, Product: product}
			return tx.QueryRow(ctx, `UPDATE cart_items SET quantity=$1, updated_at=NOW() WHERE id=$2 RETURNING created_at, updated_at`, newQuantity, existingID).
				Scan(&item.CreatedAt, &item.UpdatedAt)
		case errors.Is(err, pgx.ErrNoRows):
			item = &model.CartItem{ID: uuid.New(), ClientID: clientID, ProductID: productID, Quantity: quantity, Product: product}
			return tx.QueryRow(ctx, `INSERT INTO cart_items (id, client_id, product_id, quantity) VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at`,
				item.ID, clientID, productID, quantity).
				Scan(&item.CreatedAt, &item.UpdatedAt)
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, clientID, itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	var item *model.CartItem
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var (
			ci model.CartItem
			p  model.Product
		)
		err := tx.QueryRow(ctx, `SELECT ci.id, ci.client_id, ci.product_id, p.id, p.name, p.description, p.price, p.stock
                                 FROM cart_items ci JOIN products p ON p.id = ci.product_id
                                 WHERE ci.id=$1 AND ci.client_id=$2 FOR UPDATE`, itemID, clientID).
			Scan(&ci.ID, &ci.ClientID, &ci.ProductID, &p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if p.Stock < quantity {
			return insufficientStock(&p, quantity)
		}
		ci.Quantity = quantity
		ci.Product = &p
		item = &ci
		return tx.QueryRow(ctx, `UPDATE cart_items SET quantity=$1, updated_at=NOW() WHERE id=$2 RETURNING created_at, updated_at`, quantity, itemID).
			Scan(&item.CreatedAt, &item.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepository) Remove(ctx context.Context, clientID, itemID uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_items WHERE id=$1 AND client_id=$2`, itemID, clientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.CartItem, error) {
	const query = `SELECT ci.id, ci.client_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
                          p.id, p.name, p.description, p.price, p.stock, p.created_at, p.updated_at
                   FROM cart_items ci JOIN products p ON p.id = ci.product_id
                   WHERE ci.client_id=$1 ORDER BY ci.created_at`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartItem
	for rows.Next() {
		var (
			ci model.CartItem
			p  model.Product
		)
		if err := rows.Scan(&ci.ID, &ci.ClientID, &ci.ProductID, &ci.Quantity, &ci.CreatedAt, &ci.UpdatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		ci.Product = &p
		result = append(result, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) Clear(ctx context.Context, clientID uuid.UUID) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_items WHERE client_id=$1`, clientID)
	return err
}

func lockProduct(ctx context.Context, tx pgx.Tx, productID uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := tx.QueryRow(ctx, `SELECT id, name, description, price, stock FROM products WHERE id=$1 FOR UPDATE`, productID).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", productID, domainErrors.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func insufficientStock(p *model.Product, requested int) error {
	return fmt.Errorf("%w for product %q: available %d, requested %d", domainErrors.ErrInsufficientStock, p.Name, p.Stock, requested)
}
