package services

import (
	"braess-route-service/internal/domain"
	"context"
	"errors"
	"fmt"
	"iter"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidDriverCount = errors.New("driver count must be non-negative")

// ValidateDrivers rejects driver counts no assignment can satisfy.
func ValidateDrivers(drivers int) error {
	if drivers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDriverCount, drivers)
	}
	return nil
}

// searchResult is the fold state: the cheapest evaluation seen so far
// and how many assignments were scored.
type searchResult struct {
	best      domain.Evaluation
	evaluated int
}

func emptyResult() searchResult {
	return searchResult{best: domain.Evaluation{Cost: math.Inf(1)}}
}

// merge folds a later result into r. Ties keep r's evaluation so the
// earliest assignment in enumeration order wins.
func (r searchResult) merge(later searchResult) searchResult {
	if later.best.Cost < r.best.Cost {
		r.best = later.best
	}
	r.evaluated += later.evaluated
	return r
}

// MinCost folds a sequence of assignments down to the cheapest one.
//
// The first assignment reaching the minimum wins ties. For an empty
// sequence the returned cost is +Inf and evaluated is zero.
func MinCost(seq iter.Seq[domain.Assignment]) (best domain.Evaluation, evaluated int) {
	r := emptyResult()
	for a := range seq {
		r.evaluated++
		if c := a.Cost(); c < r.best.Cost {
			r.best = domain.Evaluation{Assignment: a, Cost: c}
		}
	}
	return r.best, r.evaluated
}

// scanRows folds the assignments whose n1 lies in [lo, hi), checking ctx
// once per n1 row so a cancelled search stops early.
func scanRows(ctx context.Context, drivers, lo, hi int) (searchResult, error) {
	r := emptyResult()
	for n1 := lo; n1 < hi; n1++ {
		if err := ctx.Err(); err != nil {
			return searchResult{}, err
		}
		best, evaluated := MinCost(assignmentRows(drivers, n1, n1+1))
		r = r.merge(searchResult{best: best, evaluated: evaluated})
	}
	return r, nil
}

// SearchOptimal evaluates every split of drivers sequentially and returns
// the cheapest one together with the number of splits scored.
func SearchOptimal(ctx context.Context, drivers int) (domain.Evaluation, int, error) {
	if err := ValidateDrivers(drivers); err != nil {
		return domain.Evaluation{}, 0, fmt.Errorf("search optimal: %w", err)
	}

	r, err := scanRows(ctx, drivers, 0, drivers+1)
	if err != nil {
		return domain.Evaluation{}, 0, fmt.Errorf("search optimal: drivers=%d: %w", drivers, err)
	}
	return r.best, r.evaluated, nil
}

// ParallelSearchOptimal is SearchOptimal with the n1 range split into
// contiguous chunks scored by at most workers goroutines.
//
// Chunk results are merged in ascending n1 order, so the reported optimum
// is identical to the sequential search for any worker count.
func ParallelSearchOptimal(ctx context.Context, drivers int, workers int) (domain.Evaluation, int, error) {
	if err := ValidateDrivers(drivers); err != nil {
		return domain.Evaluation{}, 0, fmt.Errorf("parallel search optimal: %w", err)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := drivers + 1
	// Rows shrink as n1 grows, so oversplit to keep workers evenly busy.
	chunks := min(rows, workers*8)
	chunkSize := (rows + chunks - 1) / chunks

	results := make([]searchResult, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for ci := 0; ci < chunks; ci++ {
		lo := ci * chunkSize
		hi := min(lo+chunkSize, rows)
		if lo >= hi {
			results[ci] = emptyResult()
			continue
		}

		g.Go(func() error {
			r, err := scanRows(gctx, drivers, lo, hi)
			if err != nil {
				return err
			}
			results[ci] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Evaluation{}, 0, fmt.Errorf("parallel search optimal: drivers=%d: %w", drivers, err)
	}

	total := emptyResult()
	for _, r := range results {
		total = total.merge(r)
	}

	return total.best, total.evaluated, nil
}
