package services

import (
	"braess-route-service/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoShortcutAssignment(t *testing.T) {
	assert.Equal(t, domain.Assignment{N1: 5000, N2: 0, N3: 5000}, NoShortcutAssignment(10000))
	assert.Equal(t, domain.Assignment{}, NoShortcutAssignment(0))
}

// Flooring both halves would cover only N-1 drivers for odd counts;
// route 3 absorbs the extra driver instead.
func TestNoShortcutAssignmentOddDriversKeepsEveryDriver(t *testing.T) {
	a := NoShortcutAssignment(9999)
	assert.Equal(t, domain.Assignment{N1: 4999, N2: 0, N3: 5000}, a)
	assert.Equal(t, 9999, a.Total())

	assert.Equal(t, domain.Assignment{N1: 0, N2: 0, N3: 1}, NoShortcutAssignment(1))
}

func TestGreedyAssignment(t *testing.T) {
	assert.Equal(t, domain.Assignment{N1: 0, N2: 10000, N3: 0}, GreedyAssignment(10000))
}

func TestEvaluateScenariosOrderAndValues(t *testing.T) {
	report, err := EvaluateScenarios(context.Background(), EvaluateRequest{Drivers: 10, Workers: 1})
	require.NoError(t, err)

	require.Len(t, report.Scenarios, 3)
	assert.Equal(t, 10, report.Drivers)
	assert.Equal(t, 66, report.Evaluated)

	labels := []string{report.Scenarios[0].Label, report.Scenarios[1].Label, report.Scenarios[2].Label}
	assert.Equal(t, []string{domain.ScenarioOptimal, domain.ScenarioNoShortcut, domain.ScenarioGreedy}, labels)

	noShortcut := report.Scenarios[1].Evaluation
	assert.Equal(t, domain.Assignment{N1: 5, N3: 5}, noShortcut.Assignment)
	assert.InDelta(t, 5*5.0+5*5.0, noShortcut.Cost, 1e-9)

	greedy := report.Scenarios[2].Evaluation
	assert.Equal(t, domain.Assignment{N2: 10}, greedy.Assignment)
	assert.InDelta(t, 10.0, greedy.Cost, 1e-9)

	optimal := report.Scenarios[0].Evaluation
	assert.Equal(t, referenceOptimum(10), optimal)
	assert.LessOrEqual(t, optimal.Cost, noShortcut.Cost)
	assert.LessOrEqual(t, optimal.Cost, greedy.Cost)
}

func TestEvaluateScenariosParallelMatchesSequential(t *testing.T) {
	seq, err := EvaluateScenarios(context.Background(), EvaluateRequest{Drivers: 99, Workers: 1})
	require.NoError(t, err)
	par, err := EvaluateScenarios(context.Background(), EvaluateRequest{Drivers: 99, Workers: 4})
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestEvaluateScenariosRejectsNegative(t *testing.T) {
	_, err := EvaluateScenarios(context.Background(), EvaluateRequest{Drivers: -1})
	assert.ErrorIs(t, err, ErrInvalidDriverCount)
}

func TestBraessParadoxAtTenThousandDrivers(t *testing.T) {
	greedy := domain.Evaluate(GreedyAssignment(10000))
	noShortcut := domain.Evaluate(NoShortcutAssignment(10000))

	assert.InDelta(t, 10_000_000.0, greedy.Cost, 1e-6)
	assert.InDelta(t, 5_045_000.0, noShortcut.Cost, 1e-6)
	assert.Greater(t, greedy.Cost, noShortcut.Cost)
}

func TestEvaluateScenariosSequentialHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EvaluateScenarios(ctx, EvaluateRequest{Drivers: 500, Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
