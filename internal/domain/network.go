package domain

// Fixed travel time of the uncongested segments (upper-right and lower-left).
const FixedSegmentCost = 4.50

// Congestion coefficient: each driver on a congested segment adds 1/10 to its travel time.
const congestionDivisor = 10.0

// Per-driver travel time for each of the three routes under a given load.
//
// Route 1 takes the congested upper segment then the fixed segment.
// Route 2 takes the congested upper segment, the zero-cost shortcut,
// then the congested lower segment.
// Route 3 takes the fixed segment then the congested lower segment.
type RouteCosts struct {
	Route1 float64
	Route2 float64
	Route3 float64
}

// Derive per-route costs from segment usage.
// upper counts drivers on the segment shared by routes 1 and 2,
// lower counts drivers on the segment used only by route 3.
func RouteCostsFor(upper, lower int) RouteCosts {
	u := float64(upper) / congestionDivisor
	d := float64(lower) / congestionDivisor

	return RouteCosts{
		Route1: u + FixedSegmentCost,
		Route2: u + 0 + d,
		Route3: FixedSegmentCost + d,
	}
}

// Per-route costs implied by this assignment.
func (a Assignment) RouteCosts() RouteCosts {
	return RouteCostsFor(a.N1+a.N2, a.N3)
}

// Cost returns the total travel time summed over every driver.
// It is defined for any non-negative triple; callers guarantee the sum.
func (a Assignment) Cost() float64 {
	c := a.RouteCosts()
	return float64(a.N1)*c.Route1 + float64(a.N2)*c.Route2 + float64(a.N3)*c.Route3
}

// ComputeCost is the cost of routing n1, n2 and n3 drivers over routes 1, 2 and 3.
func ComputeCost(n1, n2, n3 int) float64 {
	return Assignment{N1: n1, N2: n2, N3: n3}.Cost()
}
