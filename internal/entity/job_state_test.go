package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
)

func newJob(status entity.JobStatus) *entity.Job {
	return &entity.Job{ID: 1, DesignNo: "R-100", ItemCategory: "ring", InitialWeight: 10, Status: status}
}

func TestAssign_FromAssignableStates(t *testing.T) {
	for _, st := range []entity.JobStatus{entity.JobCreated, entity.JobPendingAssignment} {
		j := newJob(st)
		require.NoError(t, j.Assign(entity.StageCasting, 5))

		assert.Equal(t, entity.JobInProgress, j.Status)
		require.NotNil(t, j.CurrentWorkerID)
		assert.Equal(t, int64(5), *j.CurrentWorkerID)
		assert.Equal(t, entity.StageCasting, *j.CurrentStage)
	}
}

func TestAssign_RejectsOtherStates(t *testing.T) {
	for _, st := range []entity.JobStatus{entity.JobInProgress, entity.JobCompleted, entity.JobCancelled} {
		j := newJob(st)
		err := j.Assign(entity.StageFiling, 9)
		assert.True(t, apperr.IsConflict(err), "status %s", st)
		assert.Equal(t, st, j.Status)
	}
}

func TestCompleteTask_AccumulatesLoss(t *testing.T) {
	j := newJob(entity.JobCreated)
	require.NoError(t, j.Assign(entity.StageCasting, 5))

	j.CompleteTask(0.5)
	assert.Equal(t, 0.5, j.TotalLoss)
	assert.Equal(t, 5.0, j.LossPercentage)
	assert.Equal(t, entity.JobPendingAssignment, j.Status)
	assert.Nil(t, j.CurrentWorkerID)
	assert.Equal(t, entity.StageCasting, *j.CurrentStage)

	require.NoError(t, j.Assign(entity.StageFiling, 6))
	j.CompleteTask(0.25)
	assert.Equal(t, 0.75, j.TotalLoss)
	assert.InDelta(t, 7.5, j.LossPercentage, 1e-9)
}

func TestCompleteTask_KeepsTerminalStatus(t *testing.T) {
	j := newJob(entity.JobCancelled)
	j.CompleteTask(1)
	assert.Equal(t, entity.JobCancelled, j.Status)
	assert.Equal(t, 1.0, j.TotalLoss)
}

func TestApply(t *testing.T) {
	j := newJob(entity.JobCreated)
	require.NoError(t, j.Assign(entity.StageSetting, 3))

	done := entity.JobCompleted
	desc := "rush order"
	require.NoError(t, j.Apply(entity.JobPatch{Status: &done, Description: &desc}))
	assert.Equal(t, entity.JobCompleted, j.Status)
	assert.Nil(t, j.CurrentWorkerID)
	assert.Equal(t, "rush order", *j.Description)
	assert.Equal(t, 10.0, j.InitialWeight)
}

func TestApply_RejectsManualInProgress(t *testing.T) {
	j := newJob(entity.JobPendingAssignment)
	st := entity.JobInProgress
	err := j.Apply(entity.JobPatch{Status: &st})
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, entity.JobPendingAssignment, j.Status)

	bogus := entity.JobStatus("melted")
	assert.True(t, apperr.IsValidation(j.Apply(entity.JobPatch{Status: &bogus})))
}
