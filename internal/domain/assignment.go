package domain

import "fmt"

// Represents how many drivers choose each of the three routes.
// An Assignment is an immutable value; a valid assignment for N drivers
// has non-negative counts summing to N.
type Assignment struct {
	N1 int
	N2 int
	N3 int
}

// Total number of drivers covered by the assignment.
func (a Assignment) Total() int { return a.N1 + a.N2 + a.N3 }

// Report whether every route count is non-negative.
func (a Assignment) Valid() bool { return a.N1 >= 0 && a.N2 >= 0 && a.N3 >= 0 }

func (a Assignment) String() string {
	return fmt.Sprintf("n1 = %d, n2 = %d, n3 = %d", a.N1, a.N2, a.N3)
}

// An assignment paired with its total travel cost.
type Evaluation struct {
	Assignment Assignment
	Cost       float64
}

// Evaluate scores an assignment with the network cost model.
func Evaluate(a Assignment) Evaluation {
	return Evaluation{Assignment: a, Cost: a.Cost()}
}
