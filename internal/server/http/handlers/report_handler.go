package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/server/http/dto"
)

const reportDateLayout = "2006-01-02"

// ReportHandler exposes sales reporting endpoints.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler creates ReportHandler instance.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Create handles POST /api/reports. The report is generated asynchronously;
// the response carries the PENDING record.
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	start, end, ok := parsePeriod(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	report, err := h.facade.RequestReport(c.Request.Context(), CurrentUserID(c), start, end, req.ProductName, req.ClientType)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusAccepted, reportResponse(report))
}

// List handles GET /api/reports.
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.facade.Reports(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		resp = append(resp, reportResponse(&reports[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/reports/:id.
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	report, err := h.facade.Report(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, reportResponse(report))
}

// Summary handles GET /api/reports/summary?startDate=...&endDate=....
func (h *ReportHandler) Summary(c *gin.Context) {
	start, end, ok := parsePeriod(c, c.Query("startDate"), c.Query("endDate"))
	if !ok {
		return
	}

	rows, summary, err := h.facade.SalesSummary(c.Request.Context(), start, end, c.Query("productName"), c.Query("clientType"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := dto.SalesSummaryResponse{
		Rows:         make([]dto.SalesRowResponse, 0, len(rows)),
		TotalOrders:  summary.TotalOrders,
		TotalRevenue: summary.TotalRevenue,
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, dto.SalesRowResponse{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			TotalOrders:   row.TotalOrders,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue,
			AveragePrice:  row.AveragePrice,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func parsePeriod(c *gin.Context, startRaw, endRaw string) (time.Time, time.Time, bool) {
	start, err := time.Parse(reportDateLayout, startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must use the 2006-01-02 layout"})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(reportDateLayout, endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must use the 2006-01-02 layout"})
		return time.Time{}, time.Time{}, false
	}
	// The range is inclusive of the whole end day.
	return start, end.Add(24*time.Hour - time.Nanosecond), true
}
