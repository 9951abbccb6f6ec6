package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportStatus tracks background report generation.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "PENDING"
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusCompleted  ReportStatus = "COMPLETED"
	ReportStatusFailed     ReportStatus = "FAILED"
)

// Report is a sales report request plus its generation outcome.
type Report struct {
	ID          uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	ProductName string
	ClientType  string
	Status      ReportStatus
	FileName    string
	ObjectKey   string
	TotalSales  decimal.Decimal
	TotalOrders int64
	RequestedBy uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SalesRow is one aggregated line of a sales report.
type SalesRow struct {
	ProductID     uuid.UUID
	ProductName   string
	TotalOrders   int64
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	AveragePrice  decimal.Decimal
}

// ReportSummary aggregates totals across all matching orders.
type ReportSummary struct {
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}
