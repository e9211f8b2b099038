package entity

import "time"

type JobStatus string

const (
	JobCreated           JobStatus = "created"
	JobInProgress        JobStatus = "in_progress"
	JobPendingAssignment JobStatus = "pending_assignment"
	JobCompleted         JobStatus = "completed"
	JobCancelled         JobStatus = "cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobCreated, JobInProgress, JobPendingAssignment, JobCompleted, JobCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status only changes through an administrative update.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobCancelled
}

// Assignable reports whether a job in this status can be handed to a worker.
func (s JobStatus) Assignable() bool {
	return s == JobCreated || s == JobPendingAssignment
}

type Job struct {
	ID              int64     `json:"id"`
	DesignNo        string    `json:"design_no"`
	ItemCategory    string    `json:"item_category"`
	InitialWeight   float64   `json:"initial_weight"`
	TotalLoss       float64   `json:"total_loss"`
	LossPercentage  float64   `json:"loss_percentage"`
	Status          JobStatus `json:"status"`
	CurrentStage    *Stage    `json:"current_stage"`
	CurrentWorkerID *int64    `json:"current_worker_id"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	Description     *string   `json:"description"`
}

// NewJob is the insert payload for a job; storage assigns id and created_at.
type NewJob struct {
	DesignNo      string
	ItemCategory  string
	InitialWeight float64
	Description   *string
	CreatedBy     int64
}

// JobPatch carries the administratively editable fields. Nil means "leave as is".
type JobPatch struct {
	DesignNo     *string
	ItemCategory *string
	Description  *string
	Status       *JobStatus
}

func (p JobPatch) Empty() bool {
	return p.DesignNo == nil && p.ItemCategory == nil && p.Description == nil && p.Status == nil
}

// JobFilter narrows job listings. Zero value lists everything.
type JobFilter struct {
	Status      *JobStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// JobDetail is a job together with its full stage history.
type JobDetail struct {
	Job
	Transactions []Transaction `json:"transactions"`
}
