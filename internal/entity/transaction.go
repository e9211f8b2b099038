package entity

import "time"

type Stage string

const (
	StageCasting   Stage = "casting"
	StageFiling    Stage = "filing"
	StageSetting   Stage = "setting"
	StagePolishing Stage = "polishing"
)

func (s Stage) Valid() bool {
	switch s {
	case StageCasting, StageFiling, StageSetting, StagePolishing:
		return true
	}
	return false
}

func (s Stage) Ptr() *Stage { return &s }

type TransactionStatus string

const (
	TxInProgress TransactionStatus = "in_progress"
	TxCompleted  TransactionStatus = "completed"
)

// Transaction is one worker's issue-and-return engagement with a job at one stage.
// ReturnedWeight, ReturnedAt, Loss and LossPercentage are set iff Status is completed.
type Transaction struct {
	ID             int64             `json:"id"`
	JobID          int64             `json:"job_id"`
	WorkerID       int64             `json:"worker_id"`
	Stage          Stage             `json:"stage"`
	IssuedWeight   float64           `json:"issued_weight"`
	IssuedAt       time.Time         `json:"issued_at"`
	Status         TransactionStatus `json:"status"`
	ReturnedWeight *float64          `json:"returned_weight"`
	ReturnedAt     *time.Time        `json:"returned_at"`
	Loss           *float64          `json:"loss"`
	LossPercentage *float64          `json:"loss_percentage"`
	Notes          *string           `json:"notes"`

	// Populated by listings that join the users table.
	WorkerName string `json:"worker_name,omitempty"`
	WorkerRole Role   `json:"worker_role,omitempty"`
}

type NewTransaction struct {
	JobID        int64
	WorkerID     int64
	Stage        Stage
	IssuedWeight float64
}

// Completion is the set of fields stamped on a transaction when its worker returns the material.
type Completion struct {
	ReturnedWeight float64
	ReturnedAt     time.Time
	Loss           float64
	LossPercentage float64
	Notes          *string
}

// WorkerTask is an open transaction joined with the job fields a worker needs to find the piece.
type WorkerTask struct {
	TransactionID int64     `json:"transaction_id"`
	JobID         int64     `json:"job_id"`
	DesignNo      string    `json:"design_no"`
	ItemCategory  string    `json:"item_category"`
	Stage         Stage     `json:"stage"`
	IssuedWeight  float64   `json:"issued_weight"`
	IssuedAt      time.Time `json:"issued_at"`
	WorkerID      int64     `json:"worker_id,omitempty"`
	WorkerName    string    `json:"worker_name,omitempty"`
}
