package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for stored evaluation reports.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createReportsQuery := `
	CREATE TABLE IF NOT EXISTS evaluation_reports (
		drivers INTEGER PRIMARY KEY CHECK (drivers >= 0),
		evaluated BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createScenariosQuery := `
	CREATE TABLE IF NOT EXISTS evaluation_scenarios (
		drivers INTEGER NOT NULL REFERENCES evaluation_reports(drivers) ON DELETE CASCADE,
		position SMALLINT NOT NULL,
		label TEXT NOT NULL,
		n1 INTEGER NOT NULL,
		n2 INTEGER NOT NULL,
		n3 INTEGER NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (drivers, position)
	);
	`

	statements := []string{
		createReportsQuery,
		createScenariosQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
