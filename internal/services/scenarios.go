package services

import (
	"braess-route-service/internal/domain"
	"braess-route-service/internal/metrics"
	"braess-route-service/internal/platform/obs"
	"context"
	"fmt"
	"time"
)

// NoShortcutAssignment splits drivers evenly between the two outer routes,
// as if the shortcut did not exist.
//
// n1 takes the floor of half; route 3 absorbs the remainder, so for odd
// driver counts the assignment still covers every driver.
func NoShortcutAssignment(drivers int) domain.Assignment {
	half := drivers / 2
	return domain.Assignment{N1: half, N2: 0, N3: drivers - half}
}

// GreedyAssignment sends every driver over the shortcut.
func GreedyAssignment(drivers int) domain.Assignment {
	return domain.Assignment{N1: 0, N2: drivers, N3: 0}
}

type EvaluateRequest struct {
	Drivers int
	// Workers bounds search parallelism; 1 runs the sequential search,
	// zero or less uses GOMAXPROCS.
	Workers int
}

// EvaluateScenarios runs the exhaustive search for req.Drivers and reports
// the optimum next to the no-shortcut and greedy reference splits.
func EvaluateScenarios(ctx context.Context, req EvaluateRequest) (_ *domain.Report, err error) {
	defer obs.Time(ctx, fmt.Sprintf("evaluate.scenarios drivers=%d", req.Drivers))(&err)

	if err := ValidateDrivers(req.Drivers); err != nil {
		return nil, fmt.Errorf("evaluate scenarios: %w", err)
	}

	start := time.Now()

	var (
		optimal   domain.Evaluation
		evaluated int
	)
	if req.Workers == 1 {
		optimal, evaluated, err = SearchOptimal(ctx, req.Drivers)
	} else {
		optimal, evaluated, err = ParallelSearchOptimal(ctx, req.Drivers, req.Workers)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluate scenarios: %w", err)
	}

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.AssignmentsEvaluated.Add(float64(evaluated))

	return &domain.Report{
		Drivers: req.Drivers,
		Scenarios: []domain.Scenario{
			{Label: domain.ScenarioOptimal, Evaluation: optimal},
			{Label: domain.ScenarioNoShortcut, Evaluation: domain.Evaluate(NoShortcutAssignment(req.Drivers))},
			{Label: domain.ScenarioGreedy, Evaluation: domain.Evaluate(GreedyAssignment(req.Drivers))},
		},
		Evaluated: evaluated,
	}, nil
}
