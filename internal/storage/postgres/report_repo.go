package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
)

type reportRepository struct {
	storage *Storage
}

const reportColumns = `id, start_date, end_date, product_name, client_type, status, file_name, object_key, total_sales, total_orders, requested_by, created_at, updated_at`

func scanReport(row pgx.Row) (*model.Report, error) {
	var rep model.Report
	err := row.Scan(&rep.ID, &rep.StartDate, &rep.EndDate, &rep.ProductName, &rep.ClientType, &rep.Status,
		&rep.FileName, &rep.ObjectKey, &rep.TotalSales, &rep.TotalOrders, &rep.RequestedBy, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	const query = `INSERT INTO reports (id, start_date, end_date, product_name, client_type, status, requested_by)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING total_sales, total_orders, created_at, updated_at`
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.Status = model.ReportStatusPending
	err := r.storage.pool.QueryRow(ctx, query,
		report.ID, report.StartDate, report.EndDate, report.ProductName, report.ClientType, report.Status, report.RequestedBy,
	).Scan(&report.TotalSales, &report.TotalOrders, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	return scanReport(r.storage.pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id=$1`, id))
}

func (r *reportRepository) List(ctx context.Context) ([]model.Report, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Report
	for rows.Next() {
		var rep model.Report
		if err := rows.Scan(&rep.ID, &rep.StartDate, &rep.EndDate, &rep.ProductName, &rep.ClientType, &rep.Status,
			&rep.FileName, &rep.ObjectKey, &rep.TotalSales, &rep.TotalOrders, &rep.RequestedBy, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SelectBatchForProcessing claims up to limit pending reports, flipping them
// to PROCESSING so concurrent pollers skip them.
func (r *reportRepository) SelectBatchForProcessing(ctx context.Context, limit int) ([]model.Report, error) {
	const selectQuery = `SELECT ` + reportColumns + `
                         FROM reports
                         WHERE status = 'PENDING'
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var reports []model.Report
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var rep model.Report
			if err := rows.Scan(&rep.ID, &rep.StartDate, &rep.EndDate, &rep.ProductName, &rep.ClientType, &rep.Status,
				&rep.FileName, &rep.ObjectKey, &rep.TotalSales, &rep.TotalOrders, &rep.RequestedBy, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
				return err
			}
			reports = append(reports, rep)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		for i := range reports {
			if _, err := tx.Exec(ctx, `UPDATE reports SET status='PROCESSING', updated_at=NOW() WHERE id=$1`, reports[i].ID); err != nil {
				return err
			}
			reports[i].Status = model.ReportStatusProcessing
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Complete(ctx context.Context, id uuid.UUID, fileName, objectKey string, summary model.ReportSummary) error {
	const query = `UPDATE reports SET status='COMPLETED', file_name=$1, object_key=$2, total_sales=$3, total_orders=$4, updated_at=NOW() WHERE id=$5`
	tag, err := r.storage.pool.Exec(ctx, query, fileName, objectKey, summary.TotalRevenue, summary.TotalOrders, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reportRepository) Fail(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE reports SET status='FAILED', updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// AggregateSales computes per-product sales over non-cancelled orders in the
// report window, optionally filtered by product name and client user type.
func (r *reportRepository) AggregateSales(ctx context.Context, report *model.Report) ([]model.SalesRow, *model.ReportSummary, error) {
	const salesQuery = `
        SELECT p.id, p.name,
               COUNT(oi.id) AS total_orders,
               COALESCE(SUM(oi.quantity), 0) AS total_quantity,
               COALESCE(SUM(oi.subtotal), 0) AS total_revenue,
               COALESCE(AVG(oi.unit_price), 0) AS average_price
        FROM order_items oi
        JOIN products p ON p.id = oi.product_id
        JOIN orders o ON o.id = oi.order_id
        JOIN clients c ON c.id = o.client_id
        JOIN users u ON u.id = c.user_id
        WHERE o.status <> 'CANCELLED'
          AND o.order_date >= $1 AND o.order_date <= $2
          AND ($3 = '' OR p.name ILIKE '%' || $3 || '%')
          AND ($4 = '' OR u.type = $4)
        GROUP BY p.id, p.name
        ORDER BY total_revenue DESC`

	rows, err := r.storage.pool.Query(ctx, salesQuery, report.StartDate, report.EndDate, report.ProductName, report.ClientType)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var sales []model.SalesRow
	for rows.Next() {
		var row model.SalesRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalOrders, &row.TotalQuantity, &row.TotalRevenue, &row.AveragePrice); err != nil {
			return nil, nil, err
		}
		sales = append(sales, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	const totalsQuery = `
        SELECT COUNT(DISTINCT o.id) AS total_orders,
               COALESCE(SUM(oi.subtotal), 0) AS total_revenue
        FROM orders o
        JOIN order_items oi ON oi.order_id = o.id
        JOIN clients c ON c.id = o.client_id
        JOIN users u ON u.id = c.user_id
        WHERE o.status <> 'CANCELLED'
          AND o.order_date >= $1 AND o.order_date <= $2
          AND ($3 = '' OR EXISTS (
              SELECT 1 FROM order_items oi2
              JOIN products p ON p.id = oi2.product_id
              WHERE oi2.order_id = o.id AND p.name ILIKE '%' || $3 || '%'
          ))
          AND ($4 = '' OR u.type = $4)`

	var summary model.ReportSummary
	err = r.storage.pool.QueryRow(ctx, totalsQuery, report.StartDate, report.EndDate, report.ProductName, report.ClientType).
		Scan(&summary.TotalOrders, &summary.TotalRevenue)
	if err != nil {
		return nil, nil, err
	}
	return sales, &summary, nil
}
