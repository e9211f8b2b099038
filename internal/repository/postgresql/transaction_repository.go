package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
)

type TransactionRepository struct {
	q querier
}

const txColumns = `t.id, t.job_id, t.worker_id, t.stage, t.issued_weight, t.issued_at, t.status,
	t.returned_weight, t.returned_at, t.loss, t.loss_percentage, t.notes`

func scanTransaction(row rowScanner, extra ...any) (*entity.Transaction, error) {
	var (
		t          entity.Transaction
		stageText  string
		statusText string
	)
	dest := []any{
		&t.ID,
		&t.JobID,
		&t.WorkerID,
		&stageText,
		&t.IssuedWeight,
		&t.IssuedAt,
		&statusText,
		&t.ReturnedWeight, // NULL => nil until completed
		&t.ReturnedAt,
		&t.Loss,
		&t.LossPercentage,
		&t.Notes,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	t.Stage = entity.Stage(stageText)
	t.Status = entity.TransactionStatus(statusText)
	return &t, nil
}

// scanJoined scans txColumns followed by the worker's full_name and role.
func scanJoined(row rowScanner) (*entity.Transaction, error) {
	var name, role string
	t, err := scanTransaction(row, &name, &role)
	if err != nil {
		return nil, err
	}
	t.WorkerName = name
	t.WorkerRole = entity.Role(role)
	return t, nil
}

func (r *TransactionRepository) Insert(ctx context.Context, nt entity.NewTransaction) (*entity.Transaction, error) {
	q := `
INSERT INTO transactions AS t (job_id, worker_id, stage, issued_weight, status)
VALUES ($1, $2, $3, $4, 'in_progress')
RETURNING ` + txColumns + `;`

	t, err := scanTransaction(r.q.QueryRow(ctx, q, nt.JobID, nt.WorkerID, string(nt.Stage), nt.IssuedWeight))
	if err != nil {
		return nil, mapError("transactions.insert", err)
	}
	return t, nil
}

func (r *TransactionRepository) GetOpenForWorker(ctx context.Context, id, workerID int64) (*entity.Transaction, error) {
	q := `
SELECT ` + txColumns + `
FROM transactions t
WHERE t.id = $1 AND t.worker_id = $2 AND t.status = 'in_progress'
FOR UPDATE;`

	t, err := scanTransaction(r.q.QueryRow(ctx, q, id, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("transaction", id)
		}
		return nil, mapError("transactions.get_open", err)
	}
	return t, nil
}

func (r *TransactionRepository) Complete(ctx context.Context, id, workerID int64, c entity.Completion) (*entity.Transaction, error) {
	q := `
UPDATE transactions AS t
SET status='completed', returned_weight=$3, returned_at=$4, loss=$5, loss_percentage=$6, notes=$7
WHERE t.id=$1 AND t.worker_id=$2 AND t.status='in_progress'
RETURNING ` + txColumns + `;`

	t, err := scanTransaction(r.q.QueryRow(ctx, q,
		id, workerID, c.ReturnedWeight, c.ReturnedAt, c.Loss, c.LossPercentage, c.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("transaction", id)
		}
		return nil, mapError("transactions.complete", err)
	}
	return t, nil
}

func (r *TransactionRepository) HasOpen(ctx context.Context, jobID int64) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM transactions WHERE job_id = $1 AND status = 'in_progress');`

	var open bool
	if err := r.q.QueryRow(ctx, q, jobID).Scan(&open); err != nil {
		return false, mapError("transactions.has_open", err)
	}
	return open, nil
}

func (r *TransactionRepository) ListByJob(ctx context.Context, jobID int64) ([]entity.Transaction, error) {
	q := `
SELECT ` + txColumns + `, u.full_name, u.role
FROM transactions t
JOIN users u ON u.id = t.worker_id
WHERE t.job_id = $1
ORDER BY t.issued_at ASC, t.id ASC;`

	return r.listJoined(ctx, "transactions.list_by_job", q, jobID)
}

func (r *TransactionRepository) ListCompleted(ctx context.Context) ([]entity.Transaction, error) {
	q := `
SELECT ` + txColumns + `, u.full_name, u.role
FROM transactions t
JOIN users u ON u.id = t.worker_id
WHERE t.status = 'completed'
ORDER BY t.id ASC;`

	return r.listJoined(ctx, "transactions.list_completed", q)
}

func (r *TransactionRepository) listJoined(ctx context.Context, op, q string, args ...any) ([]entity.Transaction, error) {
	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()

	out := []entity.Transaction{}
	for rows.Next() {
		t, err := scanJoined(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return out, nil
}

const openTaskQuery = `
SELECT t.id, t.job_id, j.design_no, j.item_category, t.stage, t.issued_weight, t.issued_at,
       t.worker_id, u.full_name
FROM transactions t
JOIN jobs j ON j.id = t.job_id
JOIN users u ON u.id = t.worker_id
WHERE t.status = 'in_progress'`

func (r *TransactionRepository) ListOpenByWorker(ctx context.Context, workerID int64) ([]entity.WorkerTask, error) {
	return r.listTasks(ctx, "transactions.list_open_by_worker",
		openTaskQuery+` AND t.worker_id = $1 ORDER BY t.issued_at ASC, t.id ASC;`, workerID)
}

func (r *TransactionRepository) ListOpenIssuedBefore(ctx context.Context, cutoff time.Time) ([]entity.WorkerTask, error) {
	return r.listTasks(ctx, "transactions.list_stale",
		openTaskQuery+` AND t.issued_at < $1 ORDER BY t.issued_at ASC, t.id ASC;`, cutoff)
}

func (r *TransactionRepository) listTasks(ctx context.Context, op, q string, args ...any) ([]entity.WorkerTask, error) {
	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()

	out := []entity.WorkerTask{}
	for rows.Next() {
		var (
			task      entity.WorkerTask
			stageText string
		)
		if err := rows.Scan(
			&task.TransactionID, &task.JobID, &task.DesignNo, &task.ItemCategory, &stageText,
			&task.IssuedWeight, &task.IssuedAt, &task.WorkerID, &task.WorkerName,
		); err != nil {
			return nil, mapError(op, err)
		}
		task.Stage = entity.Stage(stageText)
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return out, nil
}
