package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/azargarov/dispatchsim/internal/config"
	"github.com/azargarov/dispatchsim/internal/report"
	"github.com/azargarov/dispatchsim/internal/sim"
	"github.com/azargarov/dispatchsim/internal/storage"
)

// RunCmd builds the `run` subcommand: one complete simulation run.
func RunCmd(logger *zap.Logger) *cobra.Command {
	cfg := config.Config{}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one dispatch simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.FillDefaults()
			if err := cfg.Validate(); err != nil {
				return err
			}
			seed := cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			store, err := storage.NewStore(cfg.DBPath, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			logger.Info("dispatcher starting",
				zap.Int("jobs", cfg.Jobs),
				zap.Int("max_retries", cfg.MaxRetries),
				zap.Int("mean_ms", cfg.MeanMs),
				zap.Int("stddev_ms", cfg.StddevMs),
				zap.String("db", cfg.DBPath),
				zap.Int64("seed", seed),
			)

			model := sim.NewRandModel(cfg.MeanMs, cfg.StddevMs, seed)
			d := sim.NewDispatcher(
				cfg.Jobs,
				sim.RetryPolicy{MaxRetries: cfg.MaxRetries},
				model,
				nil,
				logger,
				report.NewConsole(logger),
				store,
			)
			_, err = d.Run(cmd.Context())
			return err
		},
	}

	runCmd.Flags().IntVar(&cfg.Jobs, "jobs", config.DefaultJobs, "number of jobs to seed")
	runCmd.Flags().IntVar(&cfg.MaxRetries, "max-retries", config.DefaultMaxRetries, "retry cap per job")
	runCmd.Flags().IntVar(&cfg.MeanMs, "mean-ms", config.DefaultMeanMs, "mean service time (ms)")
	runCmd.Flags().IntVar(&cfg.StddevMs, "stddev-ms", config.DefaultStddevMs, "service time stddev (ms)")
	runCmd.Flags().StringVar(&cfg.DBPath, "db", config.DefaultDBPath, "SQLite database path")
	runCmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time-derived)")

	return runCmd
}
