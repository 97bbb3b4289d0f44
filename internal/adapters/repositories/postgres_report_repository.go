package repositories

import (
	"braess-route-service/internal/domain"
	"braess-route-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the ReportStore port.
type PostgresReportRepository struct{ DB *sql.DB }

func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{DB: db}
}

func (p *PostgresReportRepository) Name() string { return "postgres" }

// Return the stored report for drivers, with scenarios in their original order.
func (p *PostgresReportRepository) GetReport(ctx context.Context, drivers int) (_ *domain.Report, _ bool, err error) {
	defer obs.Time(ctx, "report.postgres.GetReport")(&err)

	if p.DB == nil {
		return nil, false, errors.New("postgres report repository: DB is nil")
	}

	var evaluated int
	err = p.DB.QueryRowContext(ctx, `
	SELECT evaluated
	FROM evaluation_reports
	WHERE drivers = $1;
	`, drivers).Scan(&evaluated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get report: query evaluation_reports drivers=%d: %w", drivers, err)
	}

	rows, err := p.DB.QueryContext(ctx, `
	SELECT label, n1, n2, n3, cost
	FROM evaluation_scenarios
	WHERE drivers = $1
	ORDER BY position;
	`, drivers)
	if err != nil {
		return nil, false, fmt.Errorf("get report: query evaluation_scenarios drivers=%d: %w", drivers, err)
	}
	defer rows.Close()

	report := &domain.Report{
		Drivers:   drivers,
		Evaluated: evaluated,
		Scenarios: make([]domain.Scenario, 0, 3),
	}
	for rows.Next() {
		var s domain.Scenario
		a := &s.Evaluation.Assignment
		if err := rows.Scan(&s.Label, &a.N1, &a.N2, &a.N3, &s.Evaluation.Cost); err != nil {
			return nil, false, fmt.Errorf("get report: scan row: %w", err)
		}
		report.Scenarios = append(report.Scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("get report: row iteration: %w", err)
	}

	return report, true, nil
}

// Store or replace the report and its scenarios in one transaction.
func (p *PostgresReportRepository) PutReport(ctx context.Context, report *domain.Report) error {
	if p.DB == nil {
		return errors.New("postgres report repository: DB is nil")
	}
	if report == nil {
		return errors.New("put report: report is nil")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put report: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO evaluation_reports (drivers, evaluated)
	VALUES ($1, $2)
	ON CONFLICT (drivers) DO UPDATE
	SET evaluated = EXCLUDED.evaluated,
		created_at = now();
	`, report.Drivers, report.Evaluated); err != nil {
		return fmt.Errorf("put report: upsert drivers=%d: %w", report.Drivers, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM evaluation_scenarios WHERE drivers = $1;`, report.Drivers); err != nil {
		return fmt.Errorf("put report: clear scenarios drivers=%d: %w", report.Drivers, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO evaluation_scenarios (drivers, position, label, n1, n2, n3, cost)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`)
	if err != nil {
		return fmt.Errorf("put report: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range report.Scenarios {
		a := s.Evaluation.Assignment
		if _, err := stmt.ExecContext(ctx, report.Drivers, i, s.Label, a.N1, a.N2, a.N3, s.Evaluation.Cost); err != nil {
			return fmt.Errorf("put report: insert scenario %q: %w", s.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put report: commit tx: %w", err)
	}

	return nil
}
