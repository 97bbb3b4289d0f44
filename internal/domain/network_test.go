package domain

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestComputeCostKnownValues(t *testing.T) {
	tests := []struct {
		name       string
		n1, n2, n3 int
		want       float64
	}{
		{"empty", 0, 0, 0, 0},
		{"all on route 1", 10, 0, 0, 55},
		{"all on shortcut", 0, 10, 0, 10},
		{"all on route 3", 0, 0, 10, 55},
		{"even split without shortcut", 5000, 0, 5000, 5045000},
		{"everyone greedy", 0, 10000, 0, 10000000},
		{"one on each route", 1, 1, 1, 4.7 + 0.3 + 4.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCost(tt.n1, tt.n2, tt.n3)
			if math.Abs(got-tt.want) > tolerance {
				t.Fatalf("ComputeCost(%d, %d, %d) = %v, want %v", tt.n1, tt.n2, tt.n3, got, tt.want)
			}
		})
	}
}

func TestRouteCostsFor(t *testing.T) {
	c := RouteCostsFor(10, 0)
	if math.Abs(c.Route1-5.5) > tolerance {
		t.Errorf("route 1 = %v, want 5.5", c.Route1)
	}
	if math.Abs(c.Route2-1.0) > tolerance {
		t.Errorf("route 2 = %v, want 1.0", c.Route2)
	}
	if math.Abs(c.Route3-4.5) > tolerance {
		t.Errorf("route 3 = %v, want 4.5", c.Route3)
	}
}

// Per-route costs depend only on segment usage, not on how the upper
// segment's load is split between routes 1 and 2.
func TestRouteCostsDependOnlyOnSegmentUsage(t *testing.T) {
	a := Assignment{N1: 5, N2: 5, N3: 3}
	b := Assignment{N1: 10, N2: 0, N3: 3}
	c := Assignment{N1: 0, N2: 10, N3: 3}

	if a.RouteCosts() != b.RouteCosts() || b.RouteCosts() != c.RouteCosts() {
		t.Fatalf("route costs differ: %+v %+v %+v", a.RouteCosts(), b.RouteCosts(), c.RouteCosts())
	}
}

func TestCostIsFiniteAndNonNegative(t *testing.T) {
	for n1 := 0; n1 <= 12; n1++ {
		for n2 := 0; n2 <= 12; n2++ {
			for n3 := 0; n3 <= 12; n3++ {
				got := ComputeCost(n1, n2, n3)
				if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
					t.Fatalf("ComputeCost(%d, %d, %d) = %v", n1, n2, n3, got)
				}
			}
		}
	}
}

func TestGreedyCostsMoreThanNoShortcut(t *testing.T) {
	greedy := ComputeCost(0, 10000, 0)
	noShortcut := ComputeCost(5000, 0, 5000)
	if !(greedy > noShortcut) {
		t.Fatalf("greedy cost %v should exceed no-shortcut cost %v", greedy, noShortcut)
	}
}

func TestAssignmentHelpers(t *testing.T) {
	a := Assignment{N1: 2, N2: 3, N3: 4}
	if a.Total() != 9 {
		t.Errorf("Total() = %d, want 9", a.Total())
	}
	if !a.Valid() {
		t.Errorf("expected %v to be valid", a)
	}
	if (Assignment{N1: -1}).Valid() {
		t.Errorf("negative count should be invalid")
	}
	if got := a.String(); got != "n1 = 2, n2 = 3, n3 = 4" {
		t.Errorf("String() = %q", got)
	}

	e := Evaluate(Assignment{N1: 10})
	if math.Abs(e.Cost-55) > tolerance {
		t.Errorf("Evaluate cost = %v, want 55", e.Cost)
	}
}

func TestReportScenarioLookup(t *testing.T) {
	r := Report{
		Drivers: 2,
		Scenarios: []Scenario{
			{Label: ScenarioOptimal},
			{Label: ScenarioGreedy, Evaluation: Evaluate(Assignment{N2: 2})},
		},
	}

	s, ok := r.Scenario(ScenarioGreedy)
	if !ok || s.Evaluation.Assignment.N2 != 2 {
		t.Fatalf("lookup greedy = %+v, %v", s, ok)
	}
	if _, ok := r.Scenario(ScenarioNoShortcut); ok {
		t.Fatalf("unexpected no-shortcut scenario")
	}
}

func TestReportValidate(t *testing.T) {
	valid := Report{
		Drivers: 4,
		Scenarios: []Scenario{
			{Label: ScenarioOptimal, Evaluation: Evaluate(Assignment{N2: 4})},
			{Label: ScenarioNoShortcut, Evaluation: Evaluate(Assignment{N1: 2, N3: 2})},
			{Label: ScenarioGreedy, Evaluation: Evaluate(Assignment{N2: 4})},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := valid
	missing.Scenarios = valid.Scenarios[:2]
	if err := missing.Validate(); err == nil {
		t.Errorf("expected error for missing greedy scenario")
	}

	wrongTotal := valid
	wrongTotal.Drivers = 5
	if err := wrongTotal.Validate(); err == nil {
		t.Errorf("expected error when assignments do not sum to drivers")
	}

	negative := Report{
		Drivers: 0,
		Scenarios: []Scenario{
			{Label: ScenarioOptimal, Evaluation: Evaluation{Assignment: Assignment{N1: 1, N3: -1}}},
			{Label: ScenarioNoShortcut},
			{Label: ScenarioGreedy},
		},
	}
	if err := negative.Validate(); err == nil {
		t.Errorf("expected error for negative route count")
	}
}
