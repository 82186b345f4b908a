package db

import (
	"context"
	"database/sql"
	"fmt"

	"civicflow/backend/models"
	"civicflow/common"

	"github.com/apex/log"
)

// InitSchema creates the reports and services tables if they don't exist.
// Column order is part of the storage contract and must not change.
func InitSchema(ctx context.Context, db *sql.DB) error {
	log.Info("Initializing civicflow database schema...")

	reportsTableSQL := "CREATE TABLE IF NOT EXISTS reports(" + `
		id INT NOT NULL AUTO_INCREMENT,
		location TEXT NOT NULL,
		issue TEXT NOT NULL,
		description TEXT NOT NULL,
		sentiment_score DOUBLE NOT NULL,
		priority_score INT NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'Pending',
		` + "`timestamp`" + ` CHAR(8) NOT NULL,
		PRIMARY KEY (id),
		INDEX priority_score_index (priority_score)
	)`
	if _, err := db.ExecContext(ctx, reportsTableSQL); err != nil {
		return fmt.Errorf("failed to create reports table: %w", err)
	}
	log.Info("Reports table created/verified")

	servicesTableSQL := `
	CREATE TABLE IF NOT EXISTS services(
		id INT NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(255) NOT NULL,
		location_context VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
		description TEXT NOT NULL,
		PRIMARY KEY (id),
		INDEX location_context_index (location_context)
	)`
	if _, err := db.ExecContext(ctx, servicesTableSQL); err != nil {
		return fmt.Errorf("failed to create services table: %w", err)
	}
	log.Info("Services table created/verified")

	return nil
}

// SeedServices fills the services table when, and only when, it is empty.
// It returns the number of rows inserted.
func SeedServices(ctx context.Context, db *sql.DB, services []models.Service) (int, error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var cnt int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&cnt); err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	if cnt > 0 {
		log.Infof("Services directory already holds %d entries, skipping seed", cnt)
		return 0, nil
	}

	for _, s := range services {
		result, err := tx.ExecContext(ctx, `INSERT
			INTO services (name, category, location_context, description)
			VALUES (?, ?, ?, ?)`,
			s.Name, s.Category, s.LocationContext, s.Description)
		common.LogResult("seedService", result, err, true)
		if err != nil {
			return 0, fmt.Errorf("insert service %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}
	log.Infof("Database initialized with %d services", len(services))
	return len(services), nil
}
