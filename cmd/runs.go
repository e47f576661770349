package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/azargarov/dispatchsim/internal/config"
	"github.com/azargarov/dispatchsim/internal/storage"
)

// RunsCmd builds the `runs` subcommand: list recorded run summaries.
func RunsCmd(logger *zap.Logger) *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.NewStore(dbPath, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			sums, err := store.ListRuns(limit)
			if err != nil {
				return err
			}
			if len(sums) == 0 {
				logger.Info("no runs recorded", zap.String("db", dbPath))
				return nil
			}
			for _, sum := range sums {
				logger.Info("run",
					zap.String("run_id", sum.RunID),
					zap.Int64("started_at", sum.StartedAtMs),
					zap.Int("total_jobs", sum.TotalJobs),
					zap.Int("successes", sum.Successes),
					zap.Int("failures", sum.Failures),
					zap.Float64("avg_turnaround_ms", sum.AvgTurnaroundMs),
					zap.Float64("throughput_jobs_per_s", sum.ThroughputPerSec),
				)
			}
			return nil
		},
	}

	runsCmd.Flags().StringVar(&dbPath, "db", config.DefaultDBPath, "SQLite database path")
	runsCmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list")

	return runsCmd
}
