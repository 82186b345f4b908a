package service

import (
	"context"
	"fmt"

	"civicflow/backend/models"
)

// QueryService answers dashboard reads. Every call goes to the store.
type QueryService struct {
	store ReportReader
}

func NewQueryService(store ReportReader) *QueryService {
	return &QueryService{store: store}
}

// TopReports lists the highest priority reports; a non-positive limit means DefaultTopReports.
func (s *QueryService) TopReports(ctx context.Context, limit int) ([]*models.Report, error) {
	if limit <= 0 {
		limit = DefaultTopReports
	}
	reports, err := s.store.TopReports(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top reports: %w", err)
	}
	return reports, nil
}

// CriticalCount is the number of reports scoring above 80.
func (s *QueryService) CriticalCount(ctx context.Context) (int, error) {
	cnt, err := s.store.CountCritical(ctx)
	if err != nil {
		return 0, fmt.Errorf("critical count: %w", err)
	}
	return cnt, nil
}

type AdminStats struct {
	Reports  []*models.Report
	Critical int
}

func (s *QueryService) AdminStats(ctx context.Context) (*AdminStats, error) {
	reports, err := s.TopReports(ctx, DefaultTopReports)
	if err != nil {
		return nil, err
	}
	critical, err := s.CriticalCount(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminStats{Reports: reports, Critical: critical}, nil
}
