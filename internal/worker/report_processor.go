package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/adapter/blob"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/metrics"
)

// CommerceFacade exposes the subset of application functionality required by the worker.
type CommerceFacade interface {
	ReportsForProcessing(ctx context.Context, limit int) ([]model.Report, error)
	AggregateReport(ctx context.Context, report *model.Report) ([]model.SalesRow, *model.ReportSummary, error)
	CompleteReport(ctx context.Context, id uuid.UUID, fileName, objectKey string, summary model.ReportSummary) error
	FailReport(ctx context.Context, id uuid.UUID) error
}

// csvLine is the CSV projection of one aggregated sales row.
type csvLine struct {
	ProductID     string `csv:"product_id"`
	ProductName   string `csv:"product_name"`
	TotalOrders   int64  `csv:"total_orders"`
	TotalQuantity int64  `csv:"total_quantity"`
	TotalRevenue  string `csv:"total_revenue"`
	AveragePrice  string `csv:"average_price"`
}

// ReportProcessor polls for pending reports and generates CSV files
// concurrently.
type ReportProcessor struct {
	facade       CommerceFacade
	uploader     blob.Uploader
	metrics      *metrics.Metrics
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Report
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReportProcessor constructs the report worker pool.
func NewReportProcessor(facade CommerceFacade, uploader blob.Uploader, m *metrics.Metrics, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *ReportProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ReportProcessor{
		facade:       facade,
		uploader:     uploader,
		metrics:      m,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Report, batchSize*workers),
	}
}

// Start launches background processing.
func (p *ReportProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *ReportProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *ReportProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *ReportProcessor) fetchAndDispatch(ctx context.Context) {
	reports, err := p.facade.ReportsForProcessing(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch reports for processing failed", slog.String("error", err.Error()))
		return
	}
	for _, report := range reports {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- report:
		}
	}
}

func (p *ReportProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case report, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleReport(ctx, report)
		}
	}
}

func (p *ReportProcessor) handleReport(ctx context.Context, report model.Report) {
	rows, summary, err := p.facade.AggregateReport(ctx, &report)
	if err != nil {
		p.logger.Error("sales aggregation failed", slog.String("report", report.ID.String()), slog.String("error", err.Error()))
		p.fail(ctx, report.ID)
		return
	}

	data, err := renderCSV(rows)
	if err != nil {
		p.logger.Error("csv rendering failed", slog.String("report", report.ID.String()), slog.String("error", err.Error()))
		p.fail(ctx, report.ID)
		return
	}

	fileName := fmt.Sprintf("sales-report-%s.csv", report.ID)
	objectKey := "reports/" + fileName
	if err := p.uploader.Upload(ctx, objectKey, data, "text/csv"); err != nil {
		p.logger.Error("report upload failed", slog.String("report", report.ID.String()), slog.String("error", err.Error()))
		p.fail(ctx, report.ID)
		return
	}

	if err := p.facade.CompleteReport(ctx, report.ID, fileName, objectKey, *summary); err != nil {
		p.logger.Error("report completion failed", slog.String("report", report.ID.String()), slog.String("error", err.Error()))
		p.fail(ctx, report.ID)
		return
	}

	p.metrics.ReportsProcessed.WithLabelValues("completed").Inc()
	p.logger.Info("report generated",
		slog.String("report", report.ID.String()),
		slog.Int("rows", len(rows)),
		slog.Int64("orders", summary.TotalOrders),
	)
}

func (p *ReportProcessor) fail(ctx context.Context, id uuid.UUID) {
	p.metrics.ReportsProcessed.WithLabelValues("failed").Inc()
	if err := p.facade.FailReport(ctx, id); err != nil {
		p.logger.Error("report failure not recorded", slog.String("report", id.String()), slog.String("error", err.Error()))
	}
}

func renderCSV(rows []model.SalesRow) ([]byte, error) {
	lines := make([]csvLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, csvLine{
			ProductID:     row.ProductID.String(),
			ProductName:   row.ProductName,
			TotalOrders:   row.TotalOrders,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue.StringFixed(2),
			AveragePrice:  row.AveragePrice.StringFixed(2),
		})
	}
	return gocsv.MarshalBytes(&lines)
}
