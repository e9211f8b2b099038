package service

import (
	"sort"

	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/weight"
)

// RollupWorkerPerformance groups completed transactions by worker.
// Workers with the highest average loss per job come first; ties go to the lower worker id.
func RollupWorkerPerformance(completed []entity.Transaction) []entity.WorkerPerformance {
	type acc struct {
		row  entity.WorkerPerformance
		loss weight.Accumulator
	}
	byWorker := make(map[int64]*acc)
	for _, t := range completed {
		if t.Status != entity.TxCompleted || t.Loss == nil {
			continue
		}
		a, ok := byWorker[t.WorkerID]
		if !ok {
			a = &acc{row: entity.WorkerPerformance{
				WorkerID:   t.WorkerID,
				WorkerName: t.WorkerName,
				Role:       t.WorkerRole,
			}}
			byWorker[t.WorkerID] = a
		}
		a.row.TotalJobs++
		a.loss.Add(*t.Loss)
	}

	out := make([]entity.WorkerPerformance, 0, len(byWorker))
	for _, a := range byWorker {
		a.row.TotalLoss = a.loss.Value()
		if a.row.TotalJobs > 0 {
			a.row.AverageLossPercentage = a.row.TotalLoss / float64(a.row.TotalJobs)
		}
		out = append(out, a.row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageLossPercentage != out[j].AverageLossPercentage {
			return out[i].AverageLossPercentage > out[j].AverageLossPercentage
		}
		return out[i].WorkerID < out[j].WorkerID
	})
	return out
}

// SummarizeJobs counts jobs by status bucket and totals their weights.
// Pending is everything that is neither completed nor in progress.
func SummarizeJobs(jobs []entity.Job) entity.JobSummary {
	var (
		sum     entity.JobSummary
		initial weight.Accumulator
		loss    weight.Accumulator
	)
	for _, j := range jobs {
		sum.TotalJobs++
		switch j.Status {
		case entity.JobCompleted:
			sum.CompletedJobs++
		case entity.JobInProgress:
			sum.InProgressJobs++
		}
		initial.Add(j.InitialWeight)
		loss.Add(j.TotalLoss)
	}
	sum.PendingJobs = sum.TotalJobs - sum.CompletedJobs - sum.InProgressJobs
	sum.TotalInitialWeight = initial.Value()
	sum.TotalLoss = loss.Value()
	sum.AverageLossPercentage = weight.Round2(weight.LossPercentage(sum.TotalLoss, sum.TotalInitialWeight))
	return sum
}

// RollupMaterialConsumption groups jobs by item category, ordered by category name.
func RollupMaterialConsumption(jobs []entity.Job) []entity.MaterialConsumption {
	type acc struct {
		jobs    int
		initial weight.Accumulator
		loss    weight.Accumulator
	}
	byCategory := make(map[string]*acc)
	for _, j := range jobs {
		a, ok := byCategory[j.ItemCategory]
		if !ok {
			a = &acc{}
			byCategory[j.ItemCategory] = a
		}
		a.jobs++
		a.initial.Add(j.InitialWeight)
		a.loss.Add(j.TotalLoss)
	}

	out := make([]entity.MaterialConsumption, 0, len(byCategory))
	for cat, a := range byCategory {
		row := entity.MaterialConsumption{
			ItemCategory:       cat,
			TotalJobs:          a.jobs,
			TotalInitialWeight: a.initial.Value(),
			TotalLoss:          a.loss.Value(),
		}
		row.LossPercentage = weight.LossPercentage(row.TotalLoss, row.TotalInitialWeight)
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemCategory < out[j].ItemCategory })
	return out
}
