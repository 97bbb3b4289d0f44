package cache

import (
	"braess-route-service/internal/domain"
	"braess-route-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "braess:report:"

// RedisReportCache stores JSON-encoded reports in Redis with a fixed TTL.
type RedisReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisReportCache connects to the Redis instance at url (redis://...).
// A ttl of zero keeps entries until evicted.
func NewRedisReportCache(url string, ttl time.Duration) (*RedisReportCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis report cache: parse url: %w", err)
	}
	return &RedisReportCache{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

func (c *RedisReportCache) Name() string { return "redis" }

func (c *RedisReportCache) Close() error { return c.rdb.Close() }

// Verify the Redis connection.
func (c *RedisReportCache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis report cache: ping: %w", err)
	}
	return nil
}

type scenarioRecord struct {
	Label string  `json:"label"`
	N1    int     `json:"n1"`
	N2    int     `json:"n2"`
	N3    int     `json:"n3"`
	Cost  float64 `json:"cost"`
}

type reportRecord struct {
	Drivers   int              `json:"drivers"`
	Evaluated int              `json:"evaluated"`
	Scenarios []scenarioRecord `json:"scenarios"`
}

func toRecord(r *domain.Report) reportRecord {
	rec := reportRecord{
		Drivers:   r.Drivers,
		Evaluated: r.Evaluated,
		Scenarios: make([]scenarioRecord, 0, len(r.Scenarios)),
	}
	for _, s := range r.Scenarios {
		a := s.Evaluation.Assignment
		rec.Scenarios = append(rec.Scenarios, scenarioRecord{
			Label: s.Label,
			N1:    a.N1,
			N2:    a.N2,
			N3:    a.N3,
			Cost:  s.Evaluation.Cost,
		})
	}
	return rec
}

func (rec reportRecord) toReport() *domain.Report {
	r := &domain.Report{
		Drivers:   rec.Drivers,
		Evaluated: rec.Evaluated,
		Scenarios: make([]domain.Scenario, 0, len(rec.Scenarios)),
	}
	for _, s := range rec.Scenarios {
		r.Scenarios = append(r.Scenarios, domain.Scenario{
			Label: s.Label,
			Evaluation: domain.Evaluation{
				Assignment: domain.Assignment{N1: s.N1, N2: s.N2, N3: s.N3},
				Cost:       s.Cost,
			},
		})
	}
	return r
}

func (c *RedisReportCache) GetReport(ctx context.Context, drivers int) (_ *domain.Report, _ bool, err error) {
	defer obs.Time(ctx, "report.redis.GetReport")(&err)

	data, err := c.rdb.Get(ctx, redisKeyPrefix+strconv.Itoa(drivers)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get report cache: drivers=%d: %w", drivers, err)
	}

	var rec reportRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("get report cache: decode drivers=%d: %w", drivers, err)
	}
	return rec.toReport(), true, nil
}

func (c *RedisReportCache) PutReport(ctx context.Context, report *domain.Report) error {
	if report == nil {
		return errors.New("put report cache: report is nil")
	}

	data, err := json.Marshal(toRecord(report))
	if err != nil {
		return fmt.Errorf("put report cache: encode drivers=%d: %w", report.Drivers, err)
	}

	if err := c.rdb.Set(ctx, redisKeyPrefix+strconv.Itoa(report.Drivers), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("put report cache: drivers=%d: %w", report.Drivers, err)
	}
	return nil
}
