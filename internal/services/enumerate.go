package services

import (
	"braess-route-service/internal/domain"
	"iter"
)

// Assignments yields every split of drivers over the three routes.
//
// Order is n1 ascending, then n2 ascending, with n3 = drivers - n1 - n2.
// The reported optimum depends on this order when costs tie, so it must not change.
func Assignments(drivers int) iter.Seq[domain.Assignment] {
	return assignmentRows(drivers, 0, drivers+1)
}

// assignmentRows yields the assignments whose n1 lies in [lo, hi).
func assignmentRows(drivers, lo, hi int) iter.Seq[domain.Assignment] {
	return func(yield func(domain.Assignment) bool) {
		for n1 := lo; n1 < hi; n1++ {
			for n2 := 0; n2 <= drivers-n1; n2++ {
				if !yield(domain.Assignment{N1: n1, N2: n2, N3: drivers - n1 - n2}) {
					return
				}
			}
		}
	}
}

// AssignmentCount is the number of splits Assignments yields: (N+1)(N+2)/2.
func AssignmentCount(drivers int) int {
	if drivers < 0 {
		return 0
	}
	return (drivers + 1) * (drivers + 2) / 2
}
