package service

import (
	"context"
	"time"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
)

// ReportService builds read-side rollups. Every call reads the current rows; nothing is cached.
type ReportService struct {
	store Store
	now   func() time.Time
}

func NewReportService(store Store) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

func (s *ReportService) WorkerPerformance(ctx context.Context, actor entity.Actor) ([]entity.WorkerPerformance, error) {
	if !actor.Role.IsOwner() {
		return nil, apperr.Forbidden("")
	}
	completed, err := s.store.Transactions().ListCompleted(ctx)
	if err != nil {
		return nil, apperr.Internal("reports.worker_performance", err)
	}
	return RollupWorkerPerformance(completed), nil
}

func (s *ReportService) JobSummary(ctx context.Context) (*entity.JobSummary, error) {
	jobs, err := s.store.Jobs().List(ctx, entity.JobFilter{})
	if err != nil {
		return nil, apperr.Internal("reports.job_summary", err)
	}
	sum := SummarizeJobs(jobs)
	return &sum, nil
}

// MaterialConsumption aggregates jobs created within [from, to]; either bound may be nil.
func (s *ReportService) MaterialConsumption(ctx context.Context, actor entity.Actor, from, to *time.Time) ([]entity.MaterialConsumption, error) {
	if !actor.Role.IsOwner() {
		return nil, apperr.Forbidden("")
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, apperr.Validation("end_date", "must not be before start_date")
	}
	jobs, err := s.store.Jobs().List(ctx, entity.JobFilter{CreatedFrom: from, CreatedTo: to})
	if err != nil {
		return nil, apperr.Internal("reports.material_consumption", err)
	}
	return RollupMaterialConsumption(jobs), nil
}

// StaleTasks lists in_progress transactions issued more than olderThan ago, oldest first.
// Nothing is reassigned; the list is for an owner to follow up on.
func (s *ReportService) StaleTasks(ctx context.Context, actor entity.Actor, olderThan time.Duration) ([]entity.WorkerTask, error) {
	if !actor.Role.IsOwner() {
		return nil, apperr.Forbidden("")
	}
	if olderThan <= 0 {
		return nil, apperr.Validation("older_than", "must be a positive duration")
	}
	tasks, err := s.store.Transactions().ListOpenIssuedBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return nil, apperr.Internal("reports.stale_tasks", err)
	}
	if tasks == nil {
		tasks = []entity.WorkerTask{}
	}
	return tasks, nil
}
