// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"mealplans/internal/app"

	"github.com/google/uuid"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	plans    *app.MealPlanService
	demoUser uuid.UUID
}

// New creates a Server wired to the given application service. Every request
// acts on behalf of demoUser.
func New(plans *app.MealPlanService, demoUser uuid.UUID) *Server {
	return &Server{plans: plans, demoUser: demoUser}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/meal-plans", s.handleMealPlans)
	api.HandleFunc("/meal-plans/{date}", s.handleMealPlansForDate)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", s.userMiddleware(api)))

	return s.loggingMiddleware(withNoCache(root))
}
