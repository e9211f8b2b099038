// Package memory is a process-local implementation of the storage ports, used for local runs and tests.
// InTx calls are serialized and roll back through a per-transaction undo log.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/service"
)

type DB struct {
	mu    sync.Mutex
	txMu  sync.Mutex // serializes InTx, standing in for row locks
	jobs  map[int64]entity.Job
	txs   map[int64]entity.Transaction
	users map[int64]entity.User

	nextJobID  int64
	nextTxID   int64
	nextUserID int64

	now        func() time.Time
	saveJobErr error
}

func NewDB() *DB {
	return &DB{
		jobs:  map[int64]entity.Job{},
		txs:   map[int64]entity.Transaction{},
		users: map[int64]entity.User{},
		now:   time.Now,
	}
}

// SetClock replaces the time source used for created_at and issued_at.
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.now = now
}

// FailJobSaves makes every job save return err until called with nil.
func (db *DB) FailJobSaves(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.saveJobErr = err
}

// AddUser stores u, assigning an id when u.ID is zero.
func (db *DB) AddUser(u entity.User) entity.User {
	db.mu.Lock()
	defer db.mu.Unlock()
	if u.ID == 0 {
		db.nextUserID++
		u.ID = db.nextUserID
	} else if u.ID > db.nextUserID {
		db.nextUserID = u.ID
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = db.now().UTC()
	}
	db.users[u.ID] = u
	return u
}

// PutJob stores j as is, assigning an id and created_at when unset.
func (db *DB) PutJob(j entity.Job) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.putJobLocked(j)
}

func (db *DB) putJobLocked(j entity.Job) int64 {
	if j.ID == 0 {
		db.nextJobID++
		j.ID = db.nextJobID
	} else if j.ID > db.nextJobID {
		db.nextJobID = j.ID
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = db.now().UTC()
	}
	db.jobs[j.ID] = j
	return j.ID
}

// Job returns the stored job, or the zero value.
func (db *DB) Job(id int64) entity.Job {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.jobs[id]
}

// Transaction returns the stored transaction, or the zero value.
func (db *DB) Transaction(id int64) entity.Transaction {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.txs[id]
}

func (db *DB) CountTransactions() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.txs)
}

type Store struct {
	db   *DB
	undo *undoLog // set on the Store handed to an InTx callback
}

func NewStore(db *DB) *Store {
	return &Store{db: db}
}

func (s *Store) Jobs() service.JobRepository                 { return jobs{s.db, s.undo} }
func (s *Store) Transactions() service.TransactionRepository { return transactions{s.db, s.undo} }
func (s *Store) Users() service.UserRepository               { return users{s.db} }

// InTx runs fn with a Store whose writes are recorded, and on error puts back
// only the rows fn touched. Ids handed out inside fn are not reused, like sequences.
func (s *Store) InTx(ctx context.Context, fn func(tx service.Store) error) error {
	if s.undo != nil {
		return fn(s)
	}

	s.db.txMu.Lock()
	defer s.db.txMu.Unlock()

	tx := &Store{db: s.db, undo: newUndoLog()}
	if err := fn(tx); err != nil {
		s.db.mu.Lock()
		tx.undo.restore(s.db)
		s.db.mu.Unlock()
		return err
	}
	return nil
}

// undoLog keeps the first-seen prior value of every row written in a transaction.
// A nil entry means the row did not exist.
type undoLog struct {
	jobs map[int64]*entity.Job
	txs  map[int64]*entity.Transaction
}

func newUndoLog() *undoLog {
	return &undoLog{
		jobs: map[int64]*entity.Job{},
		txs:  map[int64]*entity.Transaction{},
	}
}

// Both record methods expect db.mu to be held.
func (u *undoLog) job(db *DB, id int64) {
	if u == nil {
		return
	}
	if _, seen := u.jobs[id]; seen {
		return
	}
	if j, ok := db.jobs[id]; ok {
		u.jobs[id] = &j
		return
	}
	u.jobs[id] = nil
}

func (u *undoLog) tx(db *DB, id int64) {
	if u == nil {
		return
	}
	if _, seen := u.txs[id]; seen {
		return
	}
	if t, ok := db.txs[id]; ok {
		u.txs[id] = &t
		return
	}
	u.txs[id] = nil
}

func (u *undoLog) restore(db *DB) {
	for id, prev := range u.jobs {
		if prev == nil {
			delete(db.jobs, id)
		} else {
			db.jobs[id] = *prev
		}
	}
	for id, prev := range u.txs {
		if prev == nil {
			delete(db.txs, id)
		} else {
			db.txs[id] = *prev
		}
	}
}

type jobs struct {
	db   *DB
	undo *undoLog
}

func (r jobs) Create(ctx context.Context, nj entity.NewJob) (*entity.Job, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextJobID++
	r.undo.job(r.db, r.db.nextJobID)
	id := r.db.putJobLocked(entity.Job{
		ID:            r.db.nextJobID,
		DesignNo:      nj.DesignNo,
		ItemCategory:  nj.ItemCategory,
		InitialWeight: nj.InitialWeight,
		Status:        entity.JobCreated,
		CreatedBy:     nj.CreatedBy,
		Description:   nj.Description,
	})
	j := r.db.jobs[id]
	return &j, nil
}

func (r jobs) GetByID(ctx context.Context, id int64) (*entity.Job, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	j, ok := r.db.jobs[id]
	if !ok {
		return nil, apperr.NotFound("job", id)
	}
	return &j, nil
}

func (r jobs) GetForUpdate(ctx context.Context, id int64) (*entity.Job, error) {
	return r.GetByID(ctx, id)
}

// List returns matching jobs, newest first.
func (r jobs) List(ctx context.Context, f entity.JobFilter) ([]entity.Job, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []entity.Job{}
	for _, j := range r.db.jobs {
		if f.Status != nil && j.Status != *f.Status {
			continue
		}
		if f.CreatedFrom != nil && j.CreatedAt.Before(*f.CreatedFrom) {
			continue
		}
		if f.CreatedTo != nil && j.CreatedAt.After(*f.CreatedTo) {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].ID > out[b].ID
	})
	return out, nil
}

func (r jobs) Save(ctx context.Context, j *entity.Job) (*entity.Job, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.saveJobErr != nil {
		return nil, r.db.saveJobErr
	}
	if _, ok := r.db.jobs[j.ID]; !ok {
		return nil, apperr.NotFound("job", j.ID)
	}
	r.undo.job(r.db, j.ID)
	r.db.jobs[j.ID] = *j
	out := *j
	return &out, nil
}

type transactions struct {
	db   *DB
	undo *undoLog
}

func (r transactions) Insert(ctx context.Context, nt entity.NewTransaction) (*entity.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.jobs[nt.JobID]; !ok {
		return nil, apperr.NotFound("job", nt.JobID)
	}
	if _, ok := r.db.users[nt.WorkerID]; !ok {
		return nil, apperr.NotFound("worker", nt.WorkerID)
	}
	r.db.nextTxID++
	r.undo.tx(r.db, r.db.nextTxID)
	t := entity.Transaction{
		ID:           r.db.nextTxID,
		JobID:        nt.JobID,
		WorkerID:     nt.WorkerID,
		Stage:        nt.Stage,
		IssuedWeight: nt.IssuedWeight,
		IssuedAt:     r.db.now().UTC(),
		Status:       entity.TxInProgress,
	}
	r.db.txs[t.ID] = t
	return &t, nil
}

func (r transactions) GetOpenForWorker(ctx context.Context, id, workerID int64) (*entity.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.txs[id]
	if !ok || t.WorkerID != workerID || t.Status != entity.TxInProgress {
		return nil, apperr.NotFound("transaction", id)
	}
	return &t, nil
}

func (r transactions) Complete(ctx context.Context, id, workerID int64, c entity.Completion) (*entity.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.txs[id]
	if !ok || t.WorkerID != workerID || t.Status != entity.TxInProgress {
		return nil, apperr.NotFound("transaction", id)
	}
	returned, at, loss, pct := c.ReturnedWeight, c.ReturnedAt, c.Loss, c.LossPercentage
	t.Status = entity.TxCompleted
	t.ReturnedWeight = &returned
	t.ReturnedAt = &at
	t.Loss = &loss
	t.LossPercentage = &pct
	t.Notes = c.Notes
	r.undo.tx(r.db, id)
	r.db.txs[id] = t
	return &t, nil
}

func (r transactions) HasOpen(ctx context.Context, jobID int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.txs {
		if t.JobID == jobID && t.Status == entity.TxInProgress {
			return true, nil
		}
	}
	return false, nil
}

func (r transactions) joined(t entity.Transaction) entity.Transaction {
	if u, ok := r.db.users[t.WorkerID]; ok {
		t.WorkerName = u.FullName
		t.WorkerRole = u.Role
	}
	return t
}

func (r transactions) ListByJob(ctx context.Context, jobID int64) ([]entity.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []entity.Transaction{}
	for _, t := range r.db.txs {
		if t.JobID == jobID {
			out = append(out, r.joined(t))
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].IssuedAt.Equal(out[b].IssuedAt) {
			return out[a].IssuedAt.Before(out[b].IssuedAt)
		}
		return out[a].ID < out[b].ID
	})
	return out, nil
}

func (r transactions) openTasks(keep func(entity.Transaction) bool) []entity.WorkerTask {
	out := []entity.WorkerTask{}
	for _, t := range r.db.txs {
		if t.Status != entity.TxInProgress || !keep(t) {
			continue
		}
		j := r.db.jobs[t.JobID]
		out = append(out, entity.WorkerTask{
			TransactionID: t.ID,
			JobID:         t.JobID,
			DesignNo:      j.DesignNo,
			ItemCategory:  j.ItemCategory,
			Stage:         t.Stage,
			IssuedWeight:  t.IssuedWeight,
			IssuedAt:      t.IssuedAt,
			WorkerID:      t.WorkerID,
			WorkerName:    r.db.users[t.WorkerID].FullName,
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].IssuedAt.Equal(out[b].IssuedAt) {
			return out[a].IssuedAt.Before(out[b].IssuedAt)
		}
		return out[a].TransactionID < out[b].TransactionID
	})
	return out
}

func (r transactions) ListOpenByWorker(ctx context.Context, workerID int64) ([]entity.WorkerTask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.openTasks(func(t entity.Transaction) bool { return t.WorkerID == workerID }), nil
}

func (r transactions) ListOpenIssuedBefore(ctx context.Context, cutoff time.Time) ([]entity.WorkerTask, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.openTasks(func(t entity.Transaction) bool { return t.IssuedAt.Before(cutoff) }), nil
}

func (r transactions) ListCompleted(ctx context.Context) ([]entity.Transaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []entity.Transaction{}
	for _, t := range r.db.txs {
		if t.Status == entity.TxCompleted {
			out = append(out, r.joined(t))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

type users struct{ db *DB }

func (r users) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, apperr.NotFound("user", id)
	}
	return &u, nil
}

func (r users) List(ctx context.Context) ([]entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]entity.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		out = append(out, u)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}
