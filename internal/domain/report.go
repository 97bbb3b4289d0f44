package domain

import "fmt"

// Labels of the three reported scenarios, in output order.
const (
	ScenarioOptimal    = "Optimal"
	ScenarioNoShortcut = "Without the shortcut"
	ScenarioGreedy     = "If everyone is greedy"
)

// A labeled evaluation within a report.
type Scenario struct {
	Label      string
	Evaluation Evaluation
}

// Represents the outcome of one evaluator run for a fixed driver count.
// Scenarios are always ordered optimal, no-shortcut, greedy.
// Evaluated is the number of assignments the search scored.
type Report struct {
	Drivers   int
	Scenarios []Scenario
	Evaluated int
}

// Look up a scenario by label.
func (r Report) Scenario(label string) (Scenario, bool) {
	for _, s := range r.Scenarios {
		if s.Label == label {
			return s, true
		}
	}
	return Scenario{}, false
}

// Validate checks that a report carries all three scenarios and that each
// scenario's assignment covers exactly Drivers drivers.
func (r Report) Validate() error {
	if r.Drivers < 0 {
		return fmt.Errorf("report: negative driver count %d", r.Drivers)
	}

	for _, label := range []string{ScenarioOptimal, ScenarioNoShortcut, ScenarioGreedy} {
		s, ok := r.Scenario(label)
		if !ok {
			return fmt.Errorf("report: drivers=%d: missing scenario %q", r.Drivers, label)
		}
		a := s.Evaluation.Assignment
		if !a.Valid() || a.Total() != r.Drivers {
			return fmt.Errorf("report: drivers=%d: scenario %q has invalid assignment (%v)", r.Drivers, label, a)
		}
	}
	return nil
}
