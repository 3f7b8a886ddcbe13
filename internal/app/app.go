package app

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/config"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/render"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/runner"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/connection"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/contextutil"
)

// Run is one full batch: build the source, load the table once, execute all
// reports, render. The dataset never changes after load.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	src, err := buildSource(cfg)
	if err != nil {
		return err
	}
	return RunWithSource(ctx, src, out)
}

// RunWithSource runs the batch against an already-built source. One run id
// and one decorated logger travel through ctx: the source, the runner and
// the warning log below all report under the same run_id.
func RunWithSource(ctx context.Context, src dataset.Source, out io.Writer) error {
	runID := uuid.NewString()
	logger := zap.L().Named("app").With(zap.String("run_id", runID))
	ctx = contextutil.WithRunID(ctx, runID)
	ctx = contextutil.WithLogger(ctx, logger)

	rows, warns, err := src.Load(ctx)
	if err != nil {
		return err
	}

	ds := dataset.Build(rows, warns)
	for _, w := range ds.Warnings {
		logger.Warn("row skipped or degraded",
			zap.String("employee_id", w.EmployeeID),
			zap.Int("row", w.Row),
			zap.Error(w.Err),
		)
	}

	outcomes := runner.New(logger).Run(ctx, ds)
	return render.Text(out, outcomes)
}

func buildSource(cfg *config.Config) (dataset.Source, error) {
	switch cfg.Source {
	case config.SourcePostgres:
		db, err := connection.ConnectGORMWithRetry(
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			cfg.DBSSLMode,
			cfg.MaxRetries,
		)
		if err != nil {
			return nil, err
		}
		return dataset.NewGormSource(db, cfg.DBTable), nil
	default:
		return dataset.NewCSVSource(cfg.DatasetPath), nil
	}
}
