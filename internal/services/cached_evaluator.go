package services

import (
	"braess-route-service/internal/domain"
	"braess-route-service/internal/metrics"
	"braess-route-service/internal/ports"
	"context"
	"fmt"
	"log"
	"strconv"

	"golang.org/x/sync/singleflight"
)

// CachedEvaluator serves reports from the configured stores and falls back
// to a full search on a miss.
//
// Stores are consulted in order; a computed report is written back to all of
// them. Store failures and invalid stored reports are logged and never fail
// the evaluation. Concurrent misses for the same driver count share one search.
type CachedEvaluator struct {
	Stores  []ports.ReportStore
	Workers int

	flights singleflight.Group
}

func NewCachedEvaluator(workers int, stores ...ports.ReportStore) *CachedEvaluator {
	return &CachedEvaluator{Stores: stores, Workers: workers}
}

func (e *CachedEvaluator) Evaluate(ctx context.Context, drivers int) (*domain.Report, error) {
	if err := ValidateDrivers(drivers); err != nil {
		return nil, fmt.Errorf("cached evaluate: %w", err)
	}

	if report, ok := e.lookup(ctx, drivers); ok {
		return report, nil
	}

	v, err, _ := e.flights.Do(strconv.Itoa(drivers), func() (any, error) {
		// A flight that finished after our lookup has already written back.
		if report, ok := e.lookup(ctx, drivers); ok {
			return report, nil
		}

		report, err := EvaluateScenarios(ctx, EvaluateRequest{Drivers: drivers, Workers: e.Workers})
		if err != nil {
			return nil, err
		}

		e.writeBack(ctx, report, e.Stores)
		return report, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cached evaluate: %w", err)
	}

	return v.(*domain.Report), nil
}

// lookup returns the first valid stored report, backfilling the stores
// consulted before it.
func (e *CachedEvaluator) lookup(ctx context.Context, drivers int) (*domain.Report, bool) {
	for i, s := range e.Stores {
		report, found, err := s.GetReport(ctx, drivers)
		if err == nil && found {
			if verr := report.Validate(); verr != nil {
				err = verr
			}
		}
		if err != nil {
			metrics.ReportLookups.WithLabelValues(s.Name(), "error").Inc()
			log.Printf("report store lookup failed: store=%s drivers=%d err=%v", s.Name(), drivers, err)
			continue
		}
		if !found {
			metrics.ReportLookups.WithLabelValues(s.Name(), "miss").Inc()
			continue
		}

		metrics.ReportLookups.WithLabelValues(s.Name(), "hit").Inc()
		e.writeBack(ctx, report, e.Stores[:i])
		return report, true
	}
	return nil, false
}

func (e *CachedEvaluator) writeBack(ctx context.Context, report *domain.Report, stores []ports.ReportStore) {
	for _, s := range stores {
		if err := s.PutReport(ctx, report); err != nil {
			log.Printf("report store write failed: store=%s drivers=%d err=%v", s.Name(), report.Drivers, err)
		}
	}
}
