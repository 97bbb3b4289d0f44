package handlers

import (
	"braess-route-service/internal/api/dto"
	"braess-route-service/internal/ports"
	"braess-route-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// EvaluationHandler exposes the route-split evaluator over HTTP.
type EvaluationHandler struct {
	Evaluator      ports.Evaluator
	DefaultDrivers int
	// MaxDrivers caps the sweep a single request may demand.
	MaxDrivers int
}

// Evaluate reports the optimal, no-shortcut and greedy splits for ?drivers=N.
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	drivers, err := h.parseDrivers(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.Evaluator.Evaluate(r.Context(), drivers)
	if errors.Is(err, services.ErrInvalidDriverCount) {
		writeError(w, r, http.StatusBadRequest, "drivers must be non-negative")
		return
	}
	if err != nil {
		log.Printf("evaluate failed: drivers=%d err=%v", drivers, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.EvaluationResponse{
		Drivers:   report.Drivers,
		Evaluated: report.Evaluated,
		Scenarios: make([]dto.ScenarioResponse, 0, len(report.Scenarios)),
	}
	for _, s := range report.Scenarios {
		a := s.Evaluation.Assignment
		res.Scenarios = append(res.Scenarios, dto.ScenarioResponse{
			Label:      s.Label,
			Assignment: dto.AssignmentResponse{N1: a.N1, N2: a.N2, N3: a.N3},
			Cost:       s.Evaluation.Cost,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *EvaluationHandler) parseDrivers(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("drivers"))
	if raw == "" {
		return h.DefaultDrivers, nil
	}

	drivers, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("drivers must be an integer")
	}
	if drivers < 0 {
		return 0, errors.New("drivers must be non-negative")
	}
	if h.MaxDrivers > 0 && drivers > h.MaxDrivers {
		return 0, fmt.Errorf("drivers must be at most %d", h.MaxDrivers)
	}
	return drivers, nil
}
