package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportRequest asks for a sales report over a closed date range. Dates use
// the 2006-01-02 layout.
type ReportRequest struct {
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	ProductName string `json:"productName"`
	ClientType  string `json:"clientType"`
}

// ReportResponse is the public representation of a report request.
type ReportResponse struct {
	ID          uuid.UUID       `json:"id"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	ProductName string          `json:"productName,omitempty"`
	ClientType  string          `json:"clientType,omitempty"`
	Status      string          `json:"status"`
	FileName    string          `json:"fileName,omitempty"`
	ObjectKey   string          `json:"objectKey,omitempty"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalOrders int64           `json:"totalOrders"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SalesRowResponse is one aggregated product line of a summary.
type SalesRowResponse struct {
	ProductID     uuid.UUID       `json:"productId"`
	ProductName   string          `json:"productName"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	AveragePrice  decimal.Decimal `json:"averagePrice"`
}

// SalesSummaryResponse aggregates sales over a period without persisting.
type SalesSummaryResponse struct {
	Rows         []SalesRowResponse `json:"rows"`
	TotalOrders  int64              `json:"totalOrders"`
	TotalRevenue decimal.Decimal    `json:"totalRevenue"`
}
