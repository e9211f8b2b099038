package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/service"
)

// operator is the identity CLI reports run as.
var operator = entity.Actor{Role: entity.RoleOwner}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print production reports",
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Job counts and overall material loss",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		sum, err := service.NewReportService(a.store).JobSummary(cmd.Context())
		if err != nil {
			return err
		}
		printSummary(os.Stdout, sum)
		return nil
	},
}

var staleOlderThan time.Duration

var reportStaleCmd = &cobra.Command{
	Use:   "stale",
	Short: "Tasks still with a worker after the given duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		tasks, err := service.NewReportService(a.store).StaleTasks(cmd.Context(), operator, staleOlderThan)
		if err != nil {
			return err
		}
		printStale(os.Stdout, tasks, time.Now(), staleOlderThan)
		return nil
	},
}

func init() {
	reportStaleCmd.Flags().DurationVar(&staleOlderThan, "older-than", 72*time.Hour, "minimum time since material was issued")
	reportCmd.AddCommand(reportSummaryCmd, reportStaleCmd)
	rootCmd.AddCommand(reportCmd)
}

func printSummary(w io.Writer, s *entity.JobSummary) {
	bold := color.New(color.Bold)
	bold.Fprintln(w, "Job summary")
	fmt.Fprintf(w, "  total        %d\n", s.TotalJobs)
	fmt.Fprintf(w, "  completed    %s\n", color.GreenString("%d", s.CompletedJobs))
	fmt.Fprintf(w, "  in progress  %s\n", color.CyanString("%d", s.InProgressJobs))
	fmt.Fprintf(w, "  pending      %s\n", color.YellowString("%d", s.PendingJobs))
	fmt.Fprintf(w, "  issued       %.3f g\n", s.TotalInitialWeight)
	fmt.Fprintf(w, "  lost         %.3f g (%s)\n", s.TotalLoss, lossColor(s.AverageLossPercentage).Sprintf("%.2f%%", s.AverageLossPercentage))
}

func printStale(w io.Writer, tasks []entity.WorkerTask, now time.Time, olderThan time.Duration) {
	if len(tasks) == 0 {
		fmt.Fprintf(w, "%s no tasks open longer than %s\n", color.GreenString("✓"), olderThan)
		return
	}
	color.New(color.Bold).Fprintf(w, "%d task(s) open longer than %s\n", len(tasks), olderThan)
	for _, t := range tasks {
		age := now.Sub(t.IssuedAt).Truncate(time.Hour)
		ageColor := color.New(color.FgYellow)
		if age >= 2*olderThan {
			ageColor = color.New(color.FgRed)
		}
		fmt.Fprintf(w, "  tx %-6d job %-6d %-10s %-9s %8.3f g  %s  %s\n",
			t.TransactionID, t.JobID, t.DesignNo, t.Stage, t.IssuedWeight,
			ageColor.Sprint(age), t.WorkerName)
	}
}

// lossColor flags loss percentages above typical workshop tolerances.
func lossColor(pct float64) *color.Color {
	switch {
	case pct >= 5:
		return color.New(color.FgRed)
	case pct >= 2:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
