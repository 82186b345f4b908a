package db

import (
	"context"
	"database/sql"
	"fmt"

	"civicflow/backend/models"
	"civicflow/backend/scoring"
	"civicflow/common"

	"github.com/apex/log"
)

const reportColumns = "id, location, issue, description, sentiment_score, priority_score, status, `timestamp`"

// Store is the persistence adapter over the reports and services tables.
// It owns no connection of its own; every call borrows one from the pool and
// returns it before exiting.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveReport inserts one report row and returns its new id.
func (s *Store) SaveReport(ctx context.Context, r *models.Report) (int64, error) {
	result, err := s.db.ExecContext(ctx, "INSERT"+
		" INTO reports (location, issue, description, sentiment_score, priority_score, status, `timestamp`)"+
		" VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.Location, r.Issue, r.Description, r.SentimentScore, r.PriorityScore, string(r.Status), r.Timestamp)
	common.LogResult("saveReport", result, err, true)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted report id: %w", err)
	}
	return id, nil
}

// TopReports returns up to limit reports, highest priority first, newest first among equals.
func (s *Store) TopReports(ctx context.Context, limit int) ([]*models.Report, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+reportColumns+`
		FROM reports
		ORDER BY priority_score DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top reports: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	ret := []*models.Report{}
	for rows.Next() {
		r, err := scanReport(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		ret = append(ret, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top reports: %w", err)
	}
	return ret, nil
}

// CountCritical counts reports scoring above the critical threshold.
func (s *Store) CountCritical(ctx context.Context) (int, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports WHERE priority_score > ?`,
		scoring.CriticalThreshold).Scan(&cnt)
	if err != nil {
		return 0, fmt.Errorf("count critical reports: %w", err)
	}
	return cnt, nil
}

// ServicesFor returns the directory entries registered for exactly this location.
// The comparison is binary: case and accents must match.
func (s *Store) ServicesFor(ctx context.Context, location string) ([]*models.Service, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category, location_context, description
		FROM services
		WHERE location_context COLLATE utf8mb4_bin = ?
		ORDER BY id`, location)
	if err != nil {
		return nil, fmt.Errorf("query services for %q: %w", location, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	ret := []*models.Service{}
	for rows.Next() {
		svc, err := scanService(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		ret = append(ret, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	log.Debugf("Found %d services for %q", len(ret), location)
	return ret, nil
}

// scanReport binds columns by name so the result does not depend on column order.
func scanReport(rows *sql.Rows, cols []string) (*models.Report, error) {
	r := &models.Report{}
	var status string
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &r.Id
		case "location":
			dest[i] = &r.Location
		case "issue":
			dest[i] = &r.Issue
		case "description":
			dest[i] = &r.Description
		case "sentiment_score":
			dest[i] = &r.SentimentScore
		case "priority_score":
			dest[i] = &r.PriorityScore
		case "status":
			dest[i] = &status
		case "timestamp":
			dest[i] = &r.Timestamp
		default:
			dest[i] = new(any)
		}
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	r.Status = models.ReportStatus(status)
	return r, nil
}

func scanService(rows *sql.Rows, cols []string) (*models.Service, error) {
	svc := &models.Service{}
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id":
			dest[i] = &svc.Id
		case "name":
			dest[i] = &svc.Name
		case "category":
			dest[i] = &svc.Category
		case "location_context":
			dest[i] = &svc.LocationContext
		case "description":
			dest[i] = &svc.Description
		default:
			dest[i] = new(any)
		}
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	return svc, nil
}
