package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/service"
)

func TestReport_JobSummaryBuckets(t *testing.T) {
	store, db := newStore()
	db.PutJob(entity.Job{DesignNo: "A", ItemCategory: "ring", InitialWeight: 5, TotalLoss: 0.5, Status: entity.JobCompleted})
	db.PutJob(entity.Job{DesignNo: "B", ItemCategory: "ring", InitialWeight: 3, TotalLoss: 0.3, Status: entity.JobInProgress})
	db.PutJob(entity.Job{DesignNo: "C", ItemCategory: "bangle", InitialWeight: 4, Status: entity.JobCreated})

	sum, err := service.NewReportService(store).JobSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, sum.TotalJobs)
	assert.Equal(t, 1, sum.CompletedJobs)
	assert.Equal(t, 1, sum.InProgressJobs)
	assert.Equal(t, 1, sum.PendingJobs)
	assert.Equal(t, 12.0, sum.TotalInitialWeight)
	assert.Equal(t, 0.8, sum.TotalLoss)
	assert.Equal(t, 6.67, sum.AverageLossPercentage)
}

func TestReport_JobSummaryEmpty(t *testing.T) {
	store, _ := newStore()
	sum, err := service.NewReportService(store).JobSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.JobSummary{}, *sum)
}

func TestReport_MaterialConsumptionRing(t *testing.T) {
	store, db := newStore()
	db.PutJob(entity.Job{DesignNo: "A", ItemCategory: "ring", InitialWeight: 5.0, TotalLoss: 0.5, Status: entity.JobCompleted})
	db.PutJob(entity.Job{DesignNo: "B", ItemCategory: "ring", InitialWeight: 3.0, TotalLoss: 0.3, Status: entity.JobPendingAssignment})

	rows, err := service.NewReportService(store).MaterialConsumption(context.Background(), owner, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, entity.MaterialConsumption{
		ItemCategory:       "ring",
		TotalJobs:          2,
		TotalInitialWeight: 8.0,
		TotalLoss:          0.8,
		LossPercentage:     10.0,
	}, rows[0])
}

func TestReport_MaterialConsumptionDateRange(t *testing.T) {
	store, db := newStore()
	day := func(d int) time.Time { return time.Date(2026, 5, d, 12, 0, 0, 0, time.UTC) }
	db.PutJob(entity.Job{ItemCategory: "ring", InitialWeight: 1, CreatedAt: day(1)})
	db.PutJob(entity.Job{ItemCategory: "chain", InitialWeight: 2, TotalLoss: 0.1, CreatedAt: day(10)})
	db.PutJob(entity.Job{ItemCategory: "ring", InitialWeight: 3, CreatedAt: day(20)})
	db.PutJob(entity.Job{ItemCategory: "earring", InitialWeight: 0.5, CreatedAt: day(30)})

	from, to := day(10), day(20)
	rows, err := service.NewReportService(store).MaterialConsumption(context.Background(), owner, &from, &to)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "chain", rows[0].ItemCategory)
	assert.Equal(t, 5.0, rows[0].LossPercentage)
	assert.Equal(t, "ring", rows[1].ItemCategory)
	assert.Equal(t, 1, rows[1].TotalJobs)
	assert.Equal(t, 0.0, rows[1].LossPercentage)

	_, err = service.NewReportService(store).MaterialConsumption(context.Background(), owner, &to, &from)
	assert.True(t, apperr.IsValidation(err))

	_, err = service.NewReportService(store).MaterialConsumption(context.Background(), caster, nil, nil)
	assert.True(t, apperr.IsForbidden(err))
}

func TestReport_WorkerPerformanceWorstFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// caster loses 0.2 + 0.4 over two jobs, filer 0.5 on one.
	for _, step := range []struct {
		worker   entity.Actor
		issued   float64
		returned float64
	}{
		{caster, 10, 9.8},
		{caster, 8, 7.6},
		{filer, 6, 5.5},
	} {
		job := f.createJob(t, step.issued)
		res := f.assign(t, job.ID, step.worker, entity.StageCasting, step.issued)
		_, err := f.coord.CompleteTask(ctx, step.worker, service.CompleteRequest{TransactionID: res.Transaction.ID, ReturnedWeight: step.returned})
		require.NoError(t, err)
	}
	// An open transaction does not count.
	open := f.createJob(t, 3)
	f.assign(t, open.ID, caster, entity.StageCasting, 3)

	store := f.store
	rows, err := service.NewReportService(store).WorkerPerformance(ctx, owner)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, filer.ID, rows[0].WorkerID)
	assert.Equal(t, "Meera Filer", rows[0].WorkerName)
	assert.Equal(t, entity.RoleFiler, rows[0].Role)
	assert.Equal(t, 1, rows[0].TotalJobs)
	assert.Equal(t, 0.5, rows[0].AverageLossPercentage)

	assert.Equal(t, caster.ID, rows[1].WorkerID)
	assert.Equal(t, 2, rows[1].TotalJobs)
	assert.Equal(t, 0.6, rows[1].TotalLoss)
	assert.InDelta(t, 0.3, rows[1].AverageLossPercentage, 1e-9)

	_, err = service.NewReportService(store).WorkerPerformance(ctx, caster)
	assert.True(t, apperr.IsForbidden(err))
}

func TestReport_StaleTasks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	job := f.createJob(t, 10)
	f.assign(t, job.ID, caster, entity.StageCasting, 10)

	store := f.store
	rs := service.NewReportService(store)

	// Fixture transactions are issued in early 2026, well over a day ago.
	stale, err := rs.StaleTasks(ctx, owner, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, caster.ID, stale[0].WorkerID)
	assert.Equal(t, "Ravi Caster", stale[0].WorkerName)

	fresh, err := rs.StaleTasks(ctx, owner, 100*365*24*time.Hour)
	require.NoError(t, err)
	assert.Empty(t, fresh)

	_, err = rs.StaleTasks(ctx, owner, 0)
	assert.True(t, apperr.IsValidation(err))
	_, err = rs.StaleTasks(ctx, filer, time.Hour)
	assert.True(t, apperr.IsForbidden(err))
}

func TestRollupWorkerPerformance_TiesByWorkerID(t *testing.T) {
	loss := 0.25
	rows := service.RollupWorkerPerformance([]entity.Transaction{
		{ID: 1, WorkerID: 9, Status: entity.TxCompleted, Loss: &loss},
		{ID: 2, WorkerID: 3, Status: entity.TxCompleted, Loss: &loss},
		{ID: 3, WorkerID: 4, Status: entity.TxInProgress},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].WorkerID)
	assert.Equal(t, int64(9), rows[1].WorkerID)
}
