package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
)

type JobRepository struct {
	q querier
}

const jobColumns = `id, design_no, item_category, initial_weight, total_loss, loss_percentage,
	status, current_stage, current_worker_id, created_by, description, created_at`

func scanJob(row rowScanner) (*entity.Job, error) {
	var (
		job        entity.Job
		statusText string
		stageText  *string
	)
	if err := row.Scan(
		&job.ID,
		&job.DesignNo,
		&job.ItemCategory,
		&job.InitialWeight,
		&job.TotalLoss,
		&job.LossPercentage,
		&statusText,
		&stageText,           // NULL => nil
		&job.CurrentWorkerID, // NULL => nil
		&job.CreatedBy,
		&job.Description,
		&job.CreatedAt,
	); err != nil {
		return nil, err
	}
	job.Status = entity.JobStatus(statusText)
	if stageText != nil {
		job.CurrentStage = entity.Stage(*stageText).Ptr()
	}
	return &job, nil
}

func (r *JobRepository) Create(ctx context.Context, nj entity.NewJob) (*entity.Job, error) {
	q := `
INSERT INTO jobs (design_no, item_category, initial_weight, status, created_by, description)
VALUES ($1, $2, $3, 'created', $4, $5)
RETURNING ` + jobColumns + `;`

	job, err := scanJob(r.q.QueryRow(ctx, q, nj.DesignNo, nj.ItemCategory, nj.InitialWeight, nj.CreatedBy, nj.Description))
	if err != nil {
		return nil, mapError("jobs.create", err)
	}
	return job, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*entity.Job, error) {
	return r.get(ctx, id, "")
}

func (r *JobRepository) GetForUpdate(ctx context.Context, id int64) (*entity.Job, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *JobRepository) get(ctx context.Context, id int64, lock string) (*entity.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1` + lock + `;`

	job, err := scanJob(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("job", id)
		}
		return nil, mapError("jobs.get", err)
	}
	return job, nil
}

// List returns jobs matching f, newest first.
func (r *JobRepository) List(ctx context.Context, f entity.JobFilter) ([]entity.Job, error) {
	var (
		where []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, string(*f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.CreatedFrom != nil {
		args = append(args, *f.CreatedFrom)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.CreatedTo != nil {
		args = append(args, *f.CreatedTo)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	q := `SELECT ` + jobColumns + ` FROM jobs`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY created_at DESC, id DESC;`

	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, mapError("jobs.list", err)
	}
	defer rows.Close()

	jobs := []entity.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, mapError("jobs.list", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("jobs.list", err)
	}
	return jobs, nil
}

func (r *JobRepository) Save(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	q := `
UPDATE jobs
SET design_no=$2, item_category=$3, description=$4, status=$5, current_stage=$6,
    current_worker_id=$7, total_loss=$8, loss_percentage=$9
WHERE id=$1
RETURNING ` + jobColumns + `;`

	var stage *string
	if job.CurrentStage != nil {
		s := string(*job.CurrentStage)
		stage = &s
	}
	saved, err := scanJob(r.q.QueryRow(ctx, q,
		job.ID, job.DesignNo, job.ItemCategory, job.Description, string(job.Status), stage,
		job.CurrentWorkerID, job.TotalLoss, job.LossPercentage,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("job", job.ID)
		}
		return nil, mapError("jobs.save", err)
	}
	return saved, nil
}
