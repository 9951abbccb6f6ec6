package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// ReportUseCase schedules sales report generation.
type ReportUseCase struct {
	reports repository.ReportRepository
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// Request enqueues a report for the given period. The report is produced
// asynchronously; poll Get until it is completed.
func (u *ReportUseCase) Request(ctx context.Context, requestedBy uuid.UUID, startDate, endDate time.Time, productName, clientType string) (*model.Report, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", domainErrors.ErrValidation)
	}
	return u.reports.Create(ctx, &model.Report{
		RequestedBy: requestedBy,
		StartDate:   startDate,
		EndDate:     endDate,
		ProductName: productName,
		ClientType:  clientType,
	})
}

func (u *ReportUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	return u.reports.GetByID(ctx, id)
}

func (u *ReportUseCase) List(ctx context.Context) ([]model.Report, error) {
	return u.reports.List(ctx)
}

// SelectBatchForProcessing claims up to limit pending reports for generation.
func (u *ReportUseCase) SelectBatchForProcessing(ctx context.Context, limit int) ([]model.Report, error) {
	return u.reports.SelectBatchForProcessing(ctx, limit)
}

// Aggregate runs the sales aggregation for a claimed report.
func (u *ReportUseCase) Aggregate(ctx context.Context, report *model.Report) ([]model.SalesRow, *model.ReportSummary, error) {
	return u.reports.AggregateSales(ctx, report)
}

// Complete records a successfully generated report file.
func (u *ReportUseCase) Complete(ctx context.Context, id uuid.UUID, fileName, objectKey string, summary model.ReportSummary) error {
	return u.reports.Complete(ctx, id, fileName, objectKey, summary)
}

// Fail marks the report as failed; it stays visible with FAILED status.
func (u *ReportUseCase) Fail(ctx context.Context, id uuid.UUID) error {
	return u.reports.Fail(ctx, id)
}

// Summarize aggregates sales for the period without persisting a report.
func (u *ReportUseCase) Summarize(ctx context.Context, startDate, endDate time.Time, productName, clientType string) ([]model.SalesRow, *model.ReportSummary, error) {
	if endDate.Before(startDate) {
		return nil, nil, fmt.Errorf("%w: end date must not be before start date", domainErrors.ErrValidation)
	}
	return u.reports.AggregateSales(ctx, &model.Report{
		StartDate:   startDate,
		EndDate:     endDate,
		ProductName: productName,
		ClientType:  clientType,
	})
}
