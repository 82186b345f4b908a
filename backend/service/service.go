// Package service holds report intake, report queries and the service directory
// lookup. Storage is injected through small interfaces so each service can be
// exercised without a database.
package service

import (
	"context"

	"civicflow/backend/models"
)

// DefaultTopReports is how many reports the admin view lists.
const DefaultTopReports = 10

type ReportWriter interface {
	SaveReport(ctx context.Context, r *models.Report) (int64, error)
}

type ReportReader interface {
	TopReports(ctx context.Context, limit int) ([]*models.Report, error)
	CountCritical(ctx context.Context) (int, error)
}

type ServiceDirectory interface {
	ServicesFor(ctx context.Context, location string) ([]*models.Service, error)
}

// ReportPublisher receives every report after it is stored.
type ReportPublisher interface {
	PublishReport(r *models.Report) error
}
