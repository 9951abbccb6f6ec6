package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

// ReportRepository describes persistence for sales reports.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) (*model.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	SelectBatchForProcessing(ctx context.Context, limit int) ([]model.Report, error)
	Complete(ctx context.Context, id uuid.UUID, fileName, objectKey string, summary model.ReportSummary) error
	Fail(ctx context.Context, id uuid.UUID) error
	AggregateSales(ctx context.Context, report *model.Report) ([]model.SalesRow, *model.ReportSummary, error)
}
