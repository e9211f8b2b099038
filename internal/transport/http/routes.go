package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Routes builds the router. authn guards /api; limit, when non-nil, runs after authn so
// authenticated callers are counted per user. Browsers from allowedOrigins may call the API.
func Routes(h *Handler, authn, limit func(http.Handler) http.Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(h.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authn)
		if limit != nil {
			r.Use(limit)
		}

		r.Get("/auth/me", h.Me)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", h.CreateJob)
			r.Get("/", h.ListJobs)
			r.Get("/{id}", h.GetJob)
			r.Put("/{id}", h.UpdateJob)
			r.Post("/{id}/assign", h.AssignJob)
		})

		r.Route("/worker", func(r chi.Router) {
			r.Get("/tasks", h.MyTasks)
			r.Post("/complete-task", h.CompleteTask)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/worker-performance", h.WorkerPerformance)
			r.Get("/job-summary", h.JobSummary)
			r.Get("/material-consumption", h.MaterialConsumption)
			r.Get("/stale-tasks", h.StaleTasks)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
