package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"jewelry-production-service/internal/entity"
)

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	printSummary(&buf, &entity.JobSummary{
		TotalJobs: 3, CompletedJobs: 1, InProgressJobs: 1, PendingJobs: 1,
		TotalInitialWeight: 12, TotalLoss: 0.8, AverageLossPercentage: 6.67,
	})

	out := buf.String()
	assert.Contains(t, out, "total        3")
	assert.Contains(t, out, "pending      1")
	assert.Contains(t, out, "lost         0.800 g (6.67%)")
}

func TestPrintStale(t *testing.T) {
	color.NoColor = true
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	printStale(&buf, nil, now, 72*time.Hour)
	assert.Contains(t, buf.String(), "no tasks open longer than 72h0m0s")

	buf.Reset()
	printStale(&buf, []entity.WorkerTask{{
		TransactionID: 7, JobID: 3, DesignNo: "R-1001", Stage: entity.StageSetting,
		IssuedWeight: 9.2, IssuedAt: now.Add(-100 * time.Hour), WorkerName: "Asha Setter",
	}}, now, 72*time.Hour)
	out := buf.String()
	assert.Contains(t, out, "1 task(s) open longer than 72h0m0s")
	assert.Contains(t, out, "R-1001")
	assert.Contains(t, out, "100h0m0s")
	assert.Contains(t, out, "Asha Setter")
}

func TestLossColor(t *testing.T) {
	assert.Equal(t, color.New(color.FgRed), lossColor(6))
	assert.Equal(t, color.New(color.FgYellow), lossColor(3))
	assert.Equal(t, color.New(color.FgGreen), lossColor(0.5))
}
