package entity

type WorkerPerformance struct {
	WorkerID   int64   `json:"worker_id"`
	WorkerName string  `json:"worker_name"`
	Role       Role    `json:"role"`
	TotalJobs  int     `json:"total_jobs"`
	TotalLoss  float64 `json:"total_loss"`

	// Average loss in grams per completed transaction.
	AverageLossPercentage float64 `json:"average_loss_percentage"`
}

type JobSummary struct {
	TotalJobs             int     `json:"total_jobs"`
	CompletedJobs         int     `json:"completed_jobs"`
	InProgressJobs        int     `json:"in_progress_jobs"`
	PendingJobs           int     `json:"pending_jobs"`
	TotalInitialWeight    float64 `json:"total_initial_weight"`
	TotalLoss             float64 `json:"total_loss"`
	AverageLossPercentage float64 `json:"average_loss_percentage"`
}

type MaterialConsumption struct {
	ItemCategory       string  `json:"item_category"`
	TotalJobs          int     `json:"total_jobs"`
	TotalInitialWeight float64 `json:"total_initial_weight"`
	TotalLoss          float64 `json:"total_loss"`
	LossPercentage     float64 `json:"loss_percentage"`
}
