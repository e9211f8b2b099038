package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/auth"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/logger"
	"jewelry-production-service/internal/service"
)

type Handler struct {
	jobs     *service.JobService
	coord    *service.Coordinator
	reports  *service.ReportService
	users    *service.UserService
	validate *validator.Validate
	log      *logger.Logger
}

func NewHandler(jobs *service.JobService, coord *service.Coordinator, reports *service.ReportService, users *service.UserService, log *logger.Logger) *Handler {
	return &Handler{
		jobs:     jobs,
		coord:    coord,
		reports:  reports,
		users:    users,
		validate: newValidator(),
		log:      log,
	}
}

// actor returns the authenticated caller; the auth middleware guarantees one on /api routes.
func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	a, ok := auth.ActorFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
	}
	return a, ok
}

// owner is actor restricted to owners. The 403 is written before any input is parsed.
func (h *Handler) owner(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	a, ok := h.actor(w, r)
	if !ok {
		return a, false
	}
	if !a.Role.IsOwner() {
		h.fail(w, r, apperr.Forbidden("owner access required"))
		return a, false
	}
	return a, true
}

// worker is the counterpart of owner for routes that only workers may call.
func (h *Handler) worker(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	a, ok := h.actor(w, r)
	if !ok {
		return a, false
	}
	if a.Role.IsOwner() {
		h.fail(w, r, apperr.Forbidden("this operation is for workers only"))
		return a, false
	}
	return a, true
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("id", "must be a positive integer")
	}
	return id, nil
}

type createJobDTO struct {
	DesignNo      string  `json:"design_no" validate:"required,max=50"`
	ItemCategory  string  `json:"item_category" validate:"required,max=50"`
	InitialWeight float64 `json:"initial_weight" validate:"gt=0"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type updateJobDTO struct {
	DesignNo     *string `json:"design_no,omitempty" validate:"omitempty,max=50"`
	ItemCategory *string `json:"item_category,omitempty" validate:"omitempty,max=50"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=created in_progress pending_assignment completed cancelled"`
}

type assignJobDTO struct {
	WorkerID     int64   `json:"worker_id" validate:"gt=0"`
	Stage        string  `json:"stage" validate:"required"`
	IssuedWeight float64 `json:"issued_weight"`
}

type completeTaskDTO struct {
	TransactionID  int64   `json:"transaction_id" validate:"gt=0"`
	ReturnedWeight float64 `json:"returned_weight"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.User
// @Failure 401 {object} apiError
// @Router /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// CreateJob godoc
// @Summary Create a production job
// @Description Owner only. Weights are fixed to three decimals; the job starts in status "created".
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createJobDTO true "job payload"
// @Success 201 {object} entity.Job
// @Failure 400 {object} apiError
// @Failure 403 {object} apiError
// @Router /api/jobs [post]
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.owner(w, r)
	if !ok {
		return
	}
	var dto createJobDTO
	if err := h.decode(r, &dto); err != nil {
		h.fail(w, r, err)
		return
	}

	job, err := h.jobs.CreateJob(r.Context(), actor, service.CreateJobRequest{
		DesignNo:      dto.DesignNo,
		ItemCategory:  dto.ItemCategory,
		InitialWeight: dto.InitialWeight,
		Description:   dto.Description,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// ListJobs godoc
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "filter by status"
// @Success 200 {array} entity.Job
// @Failure 400 {object} apiError
// @Router /api/jobs [get]
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}
	var status *entity.JobStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := entity.JobStatus(s)
		status = &st
	}

	jobs, err := h.jobs.ListJobs(r.Context(), status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a job with its stage history
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "job id"
// @Success 200 {object} entity.JobDetail
// @Failure 400 {object} apiError
// @Failure 404 {object} apiError
// @Router /api/jobs/{id} [get]
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	detail, err := h.jobs.GetJobDetail(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// UpdateJob godoc
// @Summary Update job fields or status
// @Description Owner only. Loss totals are never changed here; status in_progress is entered only by assignment.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "job id"
// @Param request body updateJobDTO true "fields to change"
// @Success 200 {object} entity.Job
// @Failure 400 {object} apiError
// @Failure 403 {object} apiError
// @Failure 404 {object} apiError
// @Router /api/jobs/{id} [put]
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var dto updateJobDTO
	if err := h.decode(r, &dto); err != nil {
		h.fail(w, r, err)
		return
	}

	patch := entity.JobPatch{DesignNo: dto.DesignNo, ItemCategory: dto.ItemCategory, Description: dto.Description}
	if dto.Status != nil {
		st := entity.JobStatus(*dto.Status)
		patch.Status = &st
	}

	job, err := h.jobs.UpdateJob(r.Context(), actor, id, patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// AssignJob godoc
// @Summary Assign a job stage to a worker
// @Description Owner only. Issues material to the worker and moves the job to in_progress atomically.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "job id"
// @Param request body assignJobDTO true "assignment"
// @Success 201 {object} service.AssignResult
// @Failure 400 {object} apiError
// @Failure 403 {object} apiError
// @Failure 404 {object} apiError
// @Failure 409 {object} apiError
// @Router /api/jobs/{id}/assign [post]
func (h *Handler) AssignJob(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var dto assignJobDTO
	if err := h.decode(r, &dto); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.coord.AssignJob(r.Context(), actor, service.AssignRequest{
		JobID:        id,
		WorkerID:     dto.WorkerID,
		Stage:        entity.Stage(dto.Stage),
		IssuedWeight: dto.IssuedWeight,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// MyTasks godoc
// @Summary Open tasks of the calling worker
// @Tags worker
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.WorkerTask
// @Failure 403 {object} apiError
// @Router /api/worker/tasks [get]
func (h *Handler) MyTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	tasks, err := h.coord.MyOpenTasks(r.Context(), actor)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// CompleteTask godoc
// @Summary Return material for an assigned task
// @Description Records the returned weight, computes the loss and releases the job for the next stage.
// @Tags worker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body completeTaskDTO true "completion"
// @Success 200 {object} service.CompleteResult
// @Failure 400 {object} apiError
// @Failure 403 {object} apiError
// @Failure 404 {object} apiError
// @Router /api/worker/complete-task [post]
func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.worker(w, r)
	if !ok {
		return
	}
	var dto completeTaskDTO
	if err := h.decode(r, &dto); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.coord.CompleteTask(r.Context(), actor, service.CompleteRequest{
		TransactionID:  dto.TransactionID,
		ReturnedWeight: dto.ReturnedWeight,
		Notes:          dto.Notes,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
