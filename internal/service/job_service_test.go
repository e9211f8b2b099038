package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/service"
)

func TestJobService_CreateJob(t *testing.T) {
	f := newFixture(t)
	desc := "22k bridal ring"

	job, err := f.jobs.CreateJob(context.Background(), owner, service.CreateJobRequest{
		DesignNo:      "  R-2001 ",
		ItemCategory:  "ring",
		InitialWeight: 12.34567,
		Description:   &desc,
	})
	require.NoError(t, err)

	assert.Equal(t, "R-2001", job.DesignNo)
	assert.Equal(t, 12.346, job.InitialWeight)
	assert.Equal(t, entity.JobCreated, job.Status)
	assert.Equal(t, 0.0, job.TotalLoss)
	assert.Equal(t, 0.0, job.LossPercentage)
	assert.Nil(t, job.CurrentStage)
	assert.Nil(t, job.CurrentWorkerID)
	assert.Equal(t, owner.ID, job.CreatedBy)
}

func TestJobService_CreateJob_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name  string
		req   service.CreateJobRequest
		field string
	}{
		{"zero weight", service.CreateJobRequest{DesignNo: "A", ItemCategory: "ring", InitialWeight: 0}, "initial_weight"},
		{"negative weight", service.CreateJobRequest{DesignNo: "A", ItemCategory: "ring", InitialWeight: -2}, "initial_weight"},
		{"rounds to zero", service.CreateJobRequest{DesignNo: "A", ItemCategory: "ring", InitialWeight: 0.0004}, "initial_weight"},
		{"missing design", service.CreateJobRequest{DesignNo: " ", ItemCategory: "ring", InitialWeight: 1}, "design_no"},
		{"long category", service.CreateJobRequest{DesignNo: "A", ItemCategory: string(make([]byte, 51)), InitialWeight: 1}, "item_category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.jobs.CreateJob(ctx, owner, tt.req)
			var verr *apperr.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestJobService_CreateJob_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	_, err := f.jobs.CreateJob(context.Background(), caster, service.CreateJobRequest{DesignNo: "A", ItemCategory: "ring", InitialWeight: 1})
	assert.True(t, apperr.IsForbidden(err))
}

func TestJobService_ListJobs_StatusFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.createJob(t, 5)
	f.createJob(t, 6)
	f.assign(t, a.ID, caster, entity.StageCasting, 5)

	all, err := f.jobs.ListJobs(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	st := entity.JobInProgress
	inProgress, err := f.jobs.ListJobs(ctx, &st)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, a.ID, inProgress[0].ID)

	bogus := entity.JobStatus("shipped")
	_, err = f.jobs.ListJobs(ctx, &bogus)
	assert.True(t, apperr.IsValidation(err))
}

func TestJobService_GetJobDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	job := f.createJob(t, 10)

	detail, err := f.jobs.GetJobDetail(ctx, job.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Transactions)
	assert.Empty(t, detail.Transactions)

	first := f.assign(t, job.ID, caster, entity.StageCasting, 10)
	_, err = f.coord.CompleteTask(ctx, caster, service.CompleteRequest{TransactionID: first.Transaction.ID, ReturnedWeight: 9.8})
	require.NoError(t, err)
	f.assign(t, job.ID, filer, entity.StageFiling, 9.8)

	detail, err = f.jobs.GetJobDetail(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, detail.Transactions, 2)
	assert.Equal(t, entity.StageCasting, detail.Transactions[0].Stage)
	assert.Equal(t, "Ravi Caster", detail.Transactions[0].WorkerName)
	assert.Equal(t, entity.StageFiling, detail.Transactions[1].Stage)
	assert.Equal(t, entity.TxInProgress, detail.Transactions[1].Status)

	_, err = f.jobs.GetJobDetail(ctx, 404)
	assert.True(t, apperr.IsNotFound(err))
}

func TestJobService_UpdateJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	job := f.createJob(t, 10)
	res := f.assign(t, job.ID, caster, entity.StageCasting, 10)
	_, err := f.coord.CompleteTask(ctx, caster, service.CompleteRequest{TransactionID: res.Transaction.ID, ReturnedWeight: 9})
	require.NoError(t, err)

	done := entity.JobCompleted
	design := "R-1001-B"
	updated, err := f.jobs.UpdateJob(ctx, owner, job.ID, entity.JobPatch{Status: &done, DesignNo: &design})
	require.NoError(t, err)

	assert.Equal(t, entity.JobCompleted, updated.Status)
	assert.Equal(t, "R-1001-B", updated.DesignNo)
	assert.Equal(t, 1.0, updated.TotalLoss, "aggregates are untouched by administrative updates")
	assert.Equal(t, 10.0, updated.LossPercentage)

	_, err = f.coord.AssignJob(ctx, owner, service.AssignRequest{JobID: job.ID, WorkerID: filer.ID, Stage: entity.StageFiling, IssuedWeight: 9})
	assert.True(t, apperr.IsConflict(err), "completed jobs are not assignable")
}

func TestJobService_UpdateJob_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	job := f.createJob(t, 10)

	_, err := f.jobs.UpdateJob(ctx, owner, job.ID, entity.JobPatch{})
	assert.True(t, apperr.IsValidation(err))

	st := entity.JobInProgress
	_, err = f.jobs.UpdateJob(ctx, owner, job.ID, entity.JobPatch{Status: &st})
	assert.True(t, apperr.IsValidation(err))

	cancelled := entity.JobCancelled
	_, err = f.jobs.UpdateJob(ctx, caster, job.ID, entity.JobPatch{Status: &cancelled})
	assert.True(t, apperr.IsForbidden(err))

	_, err = f.jobs.UpdateJob(ctx, owner, 404, entity.JobPatch{Status: &cancelled})
	assert.True(t, apperr.IsNotFound(err))
}

func TestJobService_CancelWhileInProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	job := f.createJob(t, 10)
	res := f.assign(t, job.ID, caster, entity.StageCasting, 10)

	cancelled := entity.JobCancelled
	updated, err := f.jobs.UpdateJob(ctx, owner, job.ID, entity.JobPatch{Status: &cancelled})
	require.NoError(t, err)
	assert.Nil(t, updated.CurrentWorkerID)

	// The worker still returns the material; the loss is recorded but the job stays cancelled.
	_, err = f.coord.CompleteTask(ctx, caster, service.CompleteRequest{TransactionID: res.Transaction.ID, ReturnedWeight: 9.75})
	require.NoError(t, err)
	stored := f.db.Job(job.ID)
	assert.Equal(t, entity.JobCancelled, stored.Status)
	assert.Equal(t, 0.25, stored.TotalLoss)
}
