package adapthttp

import (
	"net/http"
	"strings"

	"mealplans/internal/app"
	"mealplans/internal/domain"
)

type updateMealPlansRequest struct {
	Plans []app.PlanRecord `json:"plans"`
}

func (req updateMealPlansRequest) validate() error {
	if req.Plans == nil {
		return domain.Invalidf("plans is required")
	}
	for i, p := range req.Plans {
		if strings.TrimSpace(p.Meal) == "" {
			return domain.Invalidf("plans[%d].meal must not be blank", i)
		}
	}
	return nil
}

func (s *Server) handleMealPlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	plans, err := s.plans.GetPlansForDate(r.Context(), userFromContext(r), date)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleMealPlansForDate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	date, err := domain.ParseDate(r.PathValue("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body updateMealPlansRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := body.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	plans, err := s.plans.SavePlansForDate(r.Context(), userFromContext(r), date, body.Plans)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}
