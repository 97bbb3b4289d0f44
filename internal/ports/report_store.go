package ports

import (
	"braess-route-service/internal/domain"
	"context"
)

// Port: a boundary for persisting finished evaluation reports keyed by driver count.
type ReportStore interface {
	// Name identifies the store in logs and metrics.
	Name() string
	// Return the stored report for drivers; found is false on a miss.
	GetReport(ctx context.Context, drivers int) (report *domain.Report, found bool, err error)
	// Store or replace the report for report.Drivers.
	PutReport(ctx context.Context, report *domain.Report) error
}
