package entity

import (
	"fmt"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/weight"
)

// Assign moves the job to in_progress for the given stage and worker.
// Only created and pending_assignment jobs can be assigned.
func (j *Job) Assign(stage Stage, workerID int64) error {
	if !j.Status.Assignable() {
		return apperr.Conflict(fmt.Sprintf("job %d is %s and cannot be assigned", j.ID, j.Status))
	}
	j.Status = JobInProgress
	j.CurrentStage = &stage
	j.CurrentWorkerID = &workerID
	return nil
}

// CompleteTask folds a finished transaction's loss into the job aggregates and releases the worker.
// CurrentStage is left pointing at the stage that was just worked.
func (j *Job) CompleteTask(loss float64) {
	j.TotalLoss = weight.Sum(j.TotalLoss, loss)
	j.LossPercentage = weight.LossPercentage(j.TotalLoss, j.InitialWeight)
	j.CurrentWorkerID = nil
	if !j.Status.Terminal() {
		j.Status = JobPendingAssignment
	}
}

// Apply performs an administrative update. Aggregate loss fields are never touched.
func (j *Job) Apply(p JobPatch) error {
	if p.Status != nil {
		if !p.Status.Valid() {
			return apperr.Validation("status", "must be one of created, in_progress, pending_assignment, completed, cancelled")
		}
		if *p.Status == JobInProgress && j.Status != JobInProgress {
			return apperr.Validation("status", "in_progress is only entered by assigning the job to a worker")
		}
	}

	if p.DesignNo != nil {
		j.DesignNo = *p.DesignNo
	}
	if p.ItemCategory != nil {
		j.ItemCategory = *p.ItemCategory
	}
	if p.Description != nil {
		j.Description = p.Description
	}
	if p.Status != nil {
		j.Status = *p.Status
		if j.Status != JobInProgress {
			j.CurrentWorkerID = nil
		}
	}
	return nil
}
