package service

import (
	"context"
	"time"

	"jewelry-production-service/internal/entity"
)

// Storage ports (implementation: postgresql.Store).

type JobRepository interface {
	Create(ctx context.Context, job entity.NewJob) (*entity.Job, error)
	GetByID(ctx context.Context, id int64) (*entity.Job, error)
	// GetForUpdate locks the job row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*entity.Job, error)
	List(ctx context.Context, filter entity.JobFilter) ([]entity.Job, error)
	// Save persists the mutable state of an existing job.
	Save(ctx context.Context, job *entity.Job) (*entity.Job, error)
}

type TransactionRepository interface {
	Insert(ctx context.Context, tx entity.NewTransaction) (*entity.Transaction, error)
	// GetOpenForWorker returns the in_progress transaction id assigned to workerID, locked for update.
	GetOpenForWorker(ctx context.Context, id, workerID int64) (*entity.Transaction, error)
	// Complete stamps the completion fields; it only matches rows still in_progress for workerID.
	Complete(ctx context.Context, id, workerID int64, c entity.Completion) (*entity.Transaction, error)
	// HasOpen reports whether jobID has a transaction still in_progress.
	HasOpen(ctx context.Context, jobID int64) (bool, error)
	ListByJob(ctx context.Context, jobID int64) ([]entity.Transaction, error)
	ListOpenByWorker(ctx context.Context, workerID int64) ([]entity.WorkerTask, error)
	ListOpenIssuedBefore(ctx context.Context, cutoff time.Time) ([]entity.WorkerTask, error)
	ListCompleted(ctx context.Context) ([]entity.Transaction, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// List returns every account ordered by id.
	List(ctx context.Context) ([]entity.User, error)
}

// Store groups the repositories over one storage handle.
// InTx runs fn against a Store bound to a single storage transaction:
// committed when fn returns nil, rolled back otherwise.
type Store interface {
	Jobs() JobRepository
	Transactions() TransactionRepository
	Users() UserRepository
	InTx(ctx context.Context, fn func(tx Store) error) error
}
