package httptransport

import (
	"net/http"
	"time"

	"jewelry-production-service/internal/apperr"
)

const defaultStaleAfter = 72 * time.Hour

// WorkerPerformance godoc
// @Summary Loss per worker, worst first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.WorkerPerformance
// @Failure 403 {object} apiError
// @Router /api/reports/worker-performance [get]
func (h *Handler) WorkerPerformance(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.owner(w, r)
	if !ok {
		return
	}
	rows, err := h.reports.WorkerPerformance(r.Context(), actor)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// JobSummary godoc
// @Summary Job counts and overall loss
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.JobSummary
// @Router /api/reports/job-summary [get]
func (h *Handler) JobSummary(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}
	sum, err := h.reports.JobSummary(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// MaterialConsumption godoc
// @Summary Material use and loss per item category
// @Description Dates are RFC3339 or YYYY-MM-DD; a bare end_date includes that whole day.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "jobs created on or after"
// @Param end_date query string false "jobs created on or before"
// @Success 200 {array} entity.MaterialConsumption
// @Failure 400 {object} apiError
// @Failure 403 {object} apiError
// @Router /api/reports/material-consumption [get]
func (h *Handler) MaterialConsumption(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.owner(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	from, err := parseDate("start_date", q.Get("start_date"), false)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	to, err := parseDate("end_date", q.Get("end_date"), true)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	rows, err := h.reports.MaterialConsumption(r.Context(), actor, from, to)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// StaleTasks godoc
// @Summary Open tasks older than a threshold
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param older_than query string false "Go duration, default 72h"
// @Success 200 {array} entity.WorkerTask
// @Failure 400 {object} apiError
// @Failure 403 {object} apiError
// @Router /api/reports/stale-tasks [get]
func (h *Handler) StaleTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.owner(w, r)
	if !ok {
		return
	}
	olderThan := defaultStaleAfter
	if s := r.URL.Query().Get("older_than"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			h.fail(w, r, apperr.Validation("older_than", "must be a duration such as 72h"))
			return
		}
		olderThan = d
	}

	tasks, err := h.reports.StaleTasks(r.Context(), actor, olderThan)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// parseDate accepts RFC3339 or YYYY-MM-DD. With endOfDay, a bare date means the last instant of that day.
func parseDate(field, s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, apperr.Validation(field, "must be RFC3339 or YYYY-MM-DD")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
