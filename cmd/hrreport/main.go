package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/app"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/config"
)

func main() {
	_ = godotenv.Load()

	logger, err := newLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRootCmd() *cobra.Command {
	var (
		input  string
		fromDB bool
	)

	root := &cobra.Command{
		Use:   "hrreport",
		Short: "Batch analytics over one immutable HR dataset",
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Load hr_data once, execute all 14 reports and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags menimpa env supaya satu perintah cukup tanpa .env
			if input != "" {
				os.Setenv("HR_SOURCE", string(config.SourceCSV))
				os.Setenv("HR_DATASET_PATH", input)
			}
			if fromDB {
				os.Setenv("HR_SOURCE", string(config.SourcePostgres))
			}

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			return app.Run(context.Background(), cfg, cmd.OutOrStdout())
		},
	}
	run.Flags().StringVarP(&input, "input", "i", "", "path to the hr_data CSV file")
	run.Flags().BoolVar(&fromDB, "from-db", false, "load hr_data from Postgres (DB_* env vars)")

	root.AddCommand(run)
	return root
}
