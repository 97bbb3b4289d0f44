package repositories

import (
	"braess-route-service/internal/domain"
	"context"
	"testing"
)

func TestPostgresReportRepositoryNilDB(t *testing.T) {
	repo := NewPostgresReportRepository(nil)
	ctx := context.Background()

	if _, _, err := repo.GetReport(ctx, 10); err == nil {
		t.Fatalf("expected error for nil DB on GetReport")
	}
	if err := repo.PutReport(ctx, &domain.Report{Drivers: 10}); err == nil {
		t.Fatalf("expected error for nil DB on PutReport")
	}
	if err := InitSchema(ctx, nil); err == nil {
		t.Fatalf("expected error for nil DB on InitSchema")
	}
	if repo.Name() != "postgres" {
		t.Fatalf("Name() = %q", repo.Name())
	}
}
