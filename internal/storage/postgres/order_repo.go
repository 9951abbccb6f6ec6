package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, client_id, status, total, order_date, updated_at`

// Create persists an order snapshot atomically. Product rows are locked while
// their stock is checked, but stock is not decremented here: the decrement
// happens at payment confirmation.
func (r *orderRepository) Create(ctx context.Context, clientID uuid.UUID, lines []repository.OrderLine) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id=$1)`, clientID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("client %s: %w", clientID, domainErrors.ErrNotFound)
		}

		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, err := lockProduct(ctx, tx, line.ProductID)
			if err != nil {
				return err
			}
			if product.Stock < line.Quantity {
				return insufficientStock(product, line.Quantity)
			}
			subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)
			items = append(items, model.OrderItem{
				ID:        uuid.New(),
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}

		o := &model.Order{ID: uuid.New(), ClientID: clientID, Status: model.OrderStatusReceived, Total: total, Items: items}
		err := tx.QueryRow(ctx, `INSERT INTO orders (id, client_id, status, total) VALUES ($1, $2, $3, $4) RETURNING order_date, updated_at`,
			o.ID, clientID, o.Status, total).Scan(&o.OrderDate, &o.UpdatedAt)
		if err != nil {
			return err
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
			if _, err := tx.Exec(ctx, `INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal) VALUES ($1, $2, $3, $4, $5, $6)`,
				o.Items[i].ID, o.ID, o.Items[i].ProductID, o.Items[i].Quantity, o.Items[i].UnitPrice, o.Items[i].Subtotal); err != nil {
				return err
			}
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ConfirmPayment handles the payment outcome for an order in RECEIVED status.
// A confirmed payment decrements stock for every item and moves the order to
// IN_PREPARATION in one transaction; a declined payment cancels the order
// without touching stock.
func (r *orderRepository) ConfirmPayment(ctx context.Context, orderID uuid.UUID, payment model.PaymentStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if o.Status != model.OrderStatusReceived {
			return fmt.Errorf("%w: payment is only accepted in %s, order is %s", domainErrors.ErrInvalidTransition, model.OrderStatusReceived, o.Status)
		}

		items, err := loadOrderItems(ctx, tx, orderID)
		if err != nil {
			return err
		}
		o.Items = items

		next := model.OrderStatusCancelled
		if payment == model.PaymentStatusConfirmed {
			next = model.OrderStatusInPreparation
			for _, item := range items {
				product, err := lockProduct(ctx, tx, item.ProductID)
				if err != nil {
					return err
				}
				if product.Stock < item.Quantity {
					return insufficientStock(product, item.Quantity)
				}
				if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock - $1, updated_at=NOW() WHERE id=$2`, item.Quantity, item.ProductID); err != nil {
					return err
				}
			}
		}

		if err := tx.QueryRow(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`, next, orderID).Scan(&o.UpdatedAt); err != nil {
			return err
		}
		o.Status = next
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus applies a lifecycle transition. Cancelling an order whose
// payment was already confirmed restores the decremented stock in the same
// transaction; cancelling before payment leaves stock untouched because it
// was never decremented.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !o.Status.CanTransition(status) {
			return fmt.Errorf("%w: cannot transition order from %s to %s", domainErrors.ErrInvalidTransition, o.Status, status)
		}

		items, err := loadOrderItems(ctx, tx, orderID)
		if err != nil {
			return err
		}
		o.Items = items

		if status == model.OrderStatusCancelled && o.Status != model.OrderStatusReceived {
			for _, item := range items {
				if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock + $1, updated_at=NOW() WHERE id=$2`, item.Quantity, item.ProductID); err != nil {
					return err
				}
			}
		}

		if err := tx.QueryRow(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`, status, orderID).Scan(&o.UpdatedAt); err != nil {
			return err
		}
		o.Status = status
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.ClientID, &o.Status, &o.Total, &o.OrderDate, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.storage.pool.Query(ctx, `SELECT id, order_id, product_id, quantity, unit_price, subtotal FROM order_items WHERE order_id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC`)
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE client_id=$1 ORDER BY order_date DESC`, clientID)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.Status, &o.Total, &o.OrderDate, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func lockOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, orderID).
		Scan(&o.ID, &o.ClientID, &o.Status, &o.Total, &o.OrderDate, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %s: %w", orderID, domainErrors.ErrNotFound)
		}
		return nil, err
	}
	return &o, nil
}

func loadOrderItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]model.OrderItem, error) {
	rows, err := tx.Query(ctx, `SELECT id, order_id, product_id, quantity, unit_price, subtotal FROM order_items WHERE order_id=$1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
