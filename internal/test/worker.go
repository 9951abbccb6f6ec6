package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
)

// WorkerFacadeStub feeds report batches to the background processor and
// records completion outcomes.
type WorkerFacadeStub struct {
	sync.Mutex

	Batches  [][]model.Report
	fetchIdx int

	Rows    []model.SalesRow
	Summary model.ReportSummary

	AggregateFn func(ctx context.Context, report *model.Report) ([]model.SalesRow, *model.ReportSummary, error)

	Completed   []uuid.UUID
	Failed      []uuid.UUID
	CompleteErr error
}

func (s *WorkerFacadeStub) ReportsForProcessing(ctx context.Context, limit int) ([]model.Report, error) {
	s.Lock()
	defer s.Unlock()
	if s.fetchIdx >= len(s.Batches) {
		return nil, nil
	}
	batch := s.Batches[s.fetchIdx]
	s.fetchIdx++
	return batch, nil
}

func (s *WorkerFacadeStub) AggregateReport(ctx context.Context, report *model.Report) ([]model.SalesRow, *model.ReportSummary, error) {
	if s.AggregateFn != nil {
		return s.AggregateFn(ctx, report)
	}
	s.Lock()
	defer s.Unlock()
	summary := s.Summary
	return s.Rows, &summary, nil
}

func (s *WorkerFacadeStub) CompleteReport(ctx context.Context, id uuid.UUID, fileName, objectKey string, summary model.ReportSummary) error {
	s.Lock()
	defer s.Unlock()
	if s.CompleteErr != nil {
		return s.CompleteErr
	}
	s.Completed = append(s.Completed, id)
	return nil
}

func (s *WorkerFacadeStub) FailReport(ctx context.Context, id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	s.Failed = append(s.Failed, id)
	return nil
}

// UploaderStub captures uploaded objects in memory.
type UploaderStub struct {
	sync.Mutex

	Objects map[string][]byte
	Err     error
}

func (s *UploaderStub) Upload(ctx context.Context, objectKey string, data []byte, contentType string) error {
	s.Lock()
	defer s.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.Objects == nil {
		s.Objects = make(map[string][]byte)
	}
	s.Objects[objectKey] = data
	return nil
}
