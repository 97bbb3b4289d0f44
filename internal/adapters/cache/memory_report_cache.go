package cache

import (
	"braess-route-service/internal/domain"
	"context"
	"errors"
	"slices"
	"sync"
)

// MemoryReportCache keeps reports in process memory, keyed by driver count.
type MemoryReportCache struct {
	mu      sync.RWMutex
	reports map[int]domain.Report
}

func NewMemoryReportCache() *MemoryReportCache {
	return &MemoryReportCache{reports: make(map[int]domain.Report)}
}

func (c *MemoryReportCache) Name() string { return "memory" }

func (c *MemoryReportCache) GetReport(ctx context.Context, drivers int) (*domain.Report, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.reports[drivers]
	if !ok {
		return nil, false, nil
	}
	r.Scenarios = slices.Clone(r.Scenarios)
	return &r, true, nil
}

func (c *MemoryReportCache) PutReport(ctx context.Context, report *domain.Report) error {
	if report == nil {
		return errors.New("memory report cache: report is nil")
	}

	r := *report
	r.Scenarios = slices.Clone(report.Scenarios)

	c.mu.Lock()
	c.reports[r.Drivers] = r
	c.mu.Unlock()
	return nil
}
