package report

import (
	"braess-route-service/internal/domain"
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// FormatCost renders a cost with six significant digits in %g style,
// e.g. 55, 5.045e+06, 1e+07.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', 6, 64)
}

// WriteText writes each scenario as a labeled block:
//
//	Optimal:
//	  cost(n1 = 0, n2 = 0, n3 = 0) = 0
func WriteText(w io.Writer, r *domain.Report) error {
	bw := bufio.NewWriter(w)

	for _, s := range r.Scenarios {
		a := s.Evaluation.Assignment
		if _, err := fmt.Fprintf(bw, "%s:\n  cost(n1 = %d, n2 = %d, n3 = %d) = %s\n",
			s.Label, a.N1, a.N2, a.N3, FormatCost(s.Evaluation.Cost)); err != nil {
			return fmt.Errorf("write text report: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text report: flush: %w", err)
	}
	return nil
}
