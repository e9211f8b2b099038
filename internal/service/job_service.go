package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/logger"
	"jewelry-production-service/internal/weight"
)

const maxLabelLen = 50

// JobService owns the job lifecycle outside of assignment: creation, listing,
// detail with stage history and administrative updates.
type JobService struct {
	store  Store
	ledger *Ledger
	log    *logger.Logger
}

func NewJobService(store Store, ledger *Ledger, log *logger.Logger) *JobService {
	return &JobService{store: store, ledger: ledger, log: log}
}

type CreateJobRequest struct {
	DesignNo      string
	ItemCategory  string
	InitialWeight float64
	Description   *string
}

func (s *JobService) CreateJob(ctx context.Context, actor entity.Actor, req CreateJobRequest) (*entity.Job, error) {
	if !actor.Role.IsOwner() {
		return nil, apperr.Forbidden("only owners can create jobs")
	}

	designNo, err := label("design_no", req.DesignNo)
	if err != nil {
		return nil, err
	}
	category, err := label("item_category", req.ItemCategory)
	if err != nil {
		return nil, err
	}
	initial := weight.Round3(req.InitialWeight)
	if initial <= 0 {
		return nil, apperr.Validation("initial_weight", "must be greater than 0")
	}

	job, err := s.store.Jobs().Create(ctx, entity.NewJob{
		DesignNo:      designNo,
		ItemCategory:  category,
		InitialWeight: initial,
		Description:   req.Description,
		CreatedBy:     actor.ID,
	})
	if err != nil {
		return nil, apperr.Internal("jobs.create", err)
	}

	s.log.Info("job created", "job_id", job.ID, "design_no", job.DesignNo, "initial_weight", job.InitialWeight, "actor_id", actor.ID)
	return job, nil
}

// ListJobs returns all jobs, optionally narrowed to one status.
func (s *JobService) ListJobs(ctx context.Context, status *entity.JobStatus) ([]entity.Job, error) {
	if status != nil && !status.Valid() {
		return nil, apperr.Validation("status", "unknown job status "+string(*status))
	}
	jobs, err := s.store.Jobs().List(ctx, entity.JobFilter{Status: status})
	if err != nil {
		return nil, apperr.Internal("jobs.list", err)
	}
	return jobs, nil
}

// GetJobDetail returns the job with its full transaction history.
func (s *JobService) GetJobDetail(ctx context.Context, id int64) (*entity.JobDetail, error) {
	var (
		job *entity.Job
		txs []entity.Transaction
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		job, err = s.store.Jobs().GetByID(gCtx, id)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.ledger.ListByJob(gCtx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Internal("jobs.detail", err)
	}

	if txs == nil {
		txs = []entity.Transaction{}
	}
	return &entity.JobDetail{Job: *job, Transactions: txs}, nil
}

// UpdateJob applies an administrative change under a row lock.
func (s *JobService) UpdateJob(ctx context.Context, actor entity.Actor, id int64, patch entity.JobPatch) (*entity.Job, error) {
	if !actor.Role.IsOwner() {
		return nil, apperr.Forbidden("only owners can update jobs")
	}
	if patch.Empty() {
		return nil, apperr.Validation("body", "no update data provided")
	}
	if patch.DesignNo != nil {
		v, err := label("design_no", *patch.DesignNo)
		if err != nil {
			return nil, err
		}
		patch.DesignNo = &v
	}
	if patch.ItemCategory != nil {
		v, err := label("item_category", *patch.ItemCategory)
		if err != nil {
			return nil, err
		}
		patch.ItemCategory = &v
	}

	var updated *entity.Job
	err := s.store.InTx(ctx, func(tx Store) error {
		job, err := tx.Jobs().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := job.Apply(patch); err != nil {
			return err
		}
		updated, err = tx.Jobs().Save(ctx, job)
		return err
	})
	if err != nil {
		return nil, apperr.Internal("jobs.update", err)
	}

	s.log.Info("job updated", "job_id", id, "status", updated.Status, "actor_id", actor.ID)
	return updated, nil
}

func label(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperr.Validation(field, "is required")
	}
	if utf8.RuneCountInString(v) > maxLabelLen {
		return "", apperr.Validation(field, "must be at most 50 characters")
	}
	return v, nil
}
