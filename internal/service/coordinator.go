package service

import (
	"context"
	"fmt"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/logger"
)

// Coordinator performs the operations that touch the ledger and the job together.
// Each one runs inside a single storage transaction, so a failure between the
// ledger write and the job write leaves neither behind.
type Coordinator struct {
	store  Store
	ledger *Ledger
	log    *logger.Logger
}

func NewCoordinator(store Store, ledger *Ledger, log *logger.Logger) *Coordinator {
	return &Coordinator{store: store, ledger: ledger, log: log}
}

type AssignRequest struct {
	JobID        int64
	WorkerID     int64
	Stage        entity.Stage
	IssuedWeight float64
}

type AssignResult struct {
	Transaction *entity.Transaction `json:"transaction"`
	Job         *entity.Job         `json:"job"`
}

// AssignJob hands a job to a worker for one stage and issues the material.
func (c *Coordinator) AssignJob(ctx context.Context, actor entity.Actor, req AssignRequest) (*AssignResult, error) {
	if !actor.Role.IsOwner() {
		return nil, apperr.Forbidden("only owners can assign jobs")
	}
	if _, err := checkIssue(req.Stage, req.IssuedWeight); err != nil {
		return nil, err
	}

	var res AssignResult
	err := c.store.InTx(ctx, func(tx Store) error {
		job, err := tx.Jobs().GetForUpdate(ctx, req.JobID)
		if err != nil {
			return err
		}

		worker, err := tx.Users().GetByID(ctx, req.WorkerID)
		if err != nil {
			if apperr.IsNotFound(err) {
				return apperr.NotFound("worker", req.WorkerID)
			}
			return err
		}
		if worker.Role.IsOwner() || !worker.IsActive {
			return apperr.Validation("worker_id", "must reference an active worker")
		}

		if err := job.Assign(req.Stage, worker.ID); err != nil {
			return err
		}
		open, err := tx.Transactions().HasOpen(ctx, job.ID)
		if err != nil {
			return err
		}
		if open {
			return apperr.Conflict(fmt.Sprintf("job %d still has material out with a worker", job.ID))
		}
		trx, err := c.ledger.in(tx).Issue(ctx, job.ID, worker.ID, req.Stage, req.IssuedWeight)
		if err != nil {
			return err
		}
		saved, err := tx.Jobs().Save(ctx, job)
		if err != nil {
			return err
		}

		res = AssignResult{Transaction: trx, Job: saved}
		return nil
	})
	if err != nil {
		return nil, apperr.Internal("coordinator.assign", err)
	}

	c.log.Info("job assigned",
		"job_id", res.Job.ID,
		"transaction_id", res.Transaction.ID,
		"worker_id", res.Transaction.WorkerID,
		"stage", res.Transaction.Stage,
		"issued_weight", res.Transaction.IssuedWeight,
	)
	return &res, nil
}

type CompleteRequest struct {
	TransactionID  int64
	ReturnedWeight float64
	Notes          *string
}

type CompleteResult struct {
	Transaction *entity.Transaction `json:"transaction"`
	Job         *entity.Job         `json:"job"`
}

// CompleteTask records the calling worker's returned weight and folds the loss into the job.
func (c *Coordinator) CompleteTask(ctx context.Context, actor entity.Actor, req CompleteRequest) (*CompleteResult, error) {
	if actor.Role.IsOwner() {
		return nil, apperr.Forbidden("only workers can complete tasks")
	}

	var res CompleteResult
	err := c.store.InTx(ctx, func(tx Store) error {
		trx, err := c.ledger.in(tx).Complete(ctx, req.TransactionID, actor.ID, req.ReturnedWeight, req.Notes)
		if err != nil {
			return err
		}

		job, err := tx.Jobs().GetForUpdate(ctx, trx.JobID)
		if err != nil {
			return err
		}
		job.CompleteTask(*trx.Loss)
		saved, err := tx.Jobs().Save(ctx, job)
		if err != nil {
			return err
		}

		res = CompleteResult{Transaction: trx, Job: saved}
		return nil
	})
	if err != nil {
		return nil, apperr.Internal("coordinator.complete", err)
	}

	c.log.Info("task completed",
		"job_id", res.Job.ID,
		"transaction_id", res.Transaction.ID,
		"worker_id", actor.ID,
		"loss", *res.Transaction.Loss,
		"job_total_loss", res.Job.TotalLoss,
	)
	return &res, nil
}

// MyOpenTasks lists the calling worker's unfinished transactions.
func (c *Coordinator) MyOpenTasks(ctx context.Context, actor entity.Actor) ([]entity.WorkerTask, error) {
	if actor.Role.IsOwner() {
		return nil, apperr.Forbidden("this operation is for workers only")
	}
	tasks, err := c.ledger.ListOpenByWorker(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []entity.WorkerTask{}
	}
	return tasks, nil
}
