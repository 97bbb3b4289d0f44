package ports

import (
	"braess-route-service/internal/domain"
	"context"
)

// Contract for producing the three-scenario report for a driver count.
type Evaluator interface {
	Evaluate(ctx context.Context, drivers int) (*domain.Report, error)
}
