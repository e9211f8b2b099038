package service

import (
	"context"
	"time"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/weight"
)

// Ledger is the append-and-update store of stage assignments.
// A row is inserted when material is issued and mutated once, when its worker returns it.
type Ledger struct {
	store Store
	now   func() time.Time
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// in returns a ledger bound to s, typically a transaction-scoped store.
func (l *Ledger) in(s Store) *Ledger {
	return &Ledger{store: s, now: l.now}
}

// Issue records material handed to workerID for one stage of jobID.
func (l *Ledger) Issue(ctx context.Context, jobID, workerID int64, stage entity.Stage, issuedWeight float64) (*entity.Transaction, error) {
	issued, err := checkIssue(stage, issuedWeight)
	if err != nil {
		return nil, err
	}

	if _, err := l.store.Jobs().GetByID(ctx, jobID); err != nil {
		return nil, apperr.Internal("ledger.issue: load job", err)
	}

	tx, err := l.store.Transactions().Insert(ctx, entity.NewTransaction{
		JobID:        jobID,
		WorkerID:     workerID,
		Stage:        stage,
		IssuedWeight: issued,
	})
	if err != nil {
		return nil, apperr.Internal("ledger.issue: insert", err)
	}
	return tx, nil
}

// checkIssue validates an issuance and returns the weight fixed to three decimals.
func checkIssue(stage entity.Stage, issuedWeight float64) (float64, error) {
	if !stage.Valid() {
		return 0, apperr.Validation("stage", "must be one of casting, filing, setting, polishing")
	}
	issued := weight.Round3(issuedWeight)
	if issued <= 0 {
		return 0, apperr.Validation("issued_weight", "must be greater than 0")
	}
	return issued, nil
}

// Complete records the weight workerID returned for transaction id and computes the loss.
// Only an in_progress transaction assigned to workerID matches, so a repeated
// submission fails with NotFound and leaves the first completion untouched.
func (l *Ledger) Complete(ctx context.Context, id, workerID int64, returnedWeight float64, notes *string) (*entity.Transaction, error) {
	returned := weight.Round3(returnedWeight)
	if returned <= 0 {
		return nil, apperr.Validation("returned_weight", "must be greater than 0")
	}

	open, err := l.store.Transactions().GetOpenForWorker(ctx, id, workerID)
	if err != nil {
		return nil, apperr.Internal("ledger.complete: load", err)
	}
	if returned > open.IssuedWeight {
		return nil, apperr.Validation("returned_weight", "cannot exceed issued weight")
	}

	loss := weight.Loss(open.IssuedWeight, returned)
	done, err := l.store.Transactions().Complete(ctx, id, workerID, entity.Completion{
		ReturnedWeight: returned,
		ReturnedAt:     l.now().UTC(),
		Loss:           loss,
		LossPercentage: weight.LossPercentage(loss, open.IssuedWeight),
		Notes:          notes,
	})
	if err != nil {
		return nil, apperr.Internal("ledger.complete: update", err)
	}
	return done, nil
}

// ListByJob returns a job's stage history, oldest issue first.
func (l *Ledger) ListByJob(ctx context.Context, jobID int64) ([]entity.Transaction, error) {
	txs, err := l.store.Transactions().ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal("ledger.list_by_job", err)
	}
	return txs, nil
}

// ListOpenByWorker returns the transactions workerID still has to return.
func (l *Ledger) ListOpenByWorker(ctx context.Context, workerID int64) ([]entity.WorkerTask, error) {
	tasks, err := l.store.Transactions().ListOpenByWorker(ctx, workerID)
	if err != nil {
		return nil, apperr.Internal("ledger.list_open_by_worker", err)
	}
	return tasks, nil
}
