package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/report"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/apperror"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/contextutil"
)

// Outcome is one report's result or failure. A failed report never aborts
// the others; the failure travels in Err with the report's identity intact.
type Outcome struct {
	ID      string
	Title   string
	Insight string
	Result  *report.ResultSet
	Err     error
	Took    time.Duration
}

type Runner struct {
	reports []report.Report
	logger  *zap.Logger
}

func New(logger ...*zap.Logger) *Runner {
	l := zap.L().Named("report.runner")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.runner")
	}
	return &Runner{reports: report.All(), logger: l}
}

// Run executes every report concurrently over the immutable dataset and
// returns outcomes in the fixed declared sequence, whatever the completion
// order. The dataset is read-only so the workers need no coordination beyond
// the final join. The run id and logger come from ctx when the caller set
// them (app does); a bare ctx gets a fresh run id.
func (r *Runner) Run(ctx context.Context, ds *dataset.Dataset) []Outcome {
	runID := contextutil.GetRunID(ctx)
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := contextutil.GetLogger(ctx, r.logger)

	logger.Info("run started",
		zap.String("run_id", runID),
		zap.Int("reports", len(r.reports)),
		zap.Int("rows", len(ds.Employees)),
		zap.Int("warnings", len(ds.Warnings)),
	)

	outcomes := make([]Outcome, len(r.reports))

	// Reports never block and one failure must not cancel the rest, so a
	// zero-value group with no derived context is all the coordination needed.
	var g errgroup.Group
	for i, rep := range r.reports {
		i, rep := i, rep
		g.Go(func() error {
			outcomes[i] = r.execute(rep, ds, runID, logger)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (r *Runner) execute(rep report.Report, ds *dataset.Dataset, runID string, logger *zap.Logger) (out Outcome) {
	start := time.Now()
	out = Outcome{ID: rep.ID, Title: rep.Title, Insight: rep.Insight}

	defer func() {
		out.Took = time.Since(start)
		if rec := recover(); rec != nil {
			out.Err = apperror.New(apperror.CodeInternalError, fmt.Sprintf("report panicked: %v", rec))
			out.Result = nil
		}
		if out.Err != nil {
			logger.Error("report failed",
				zap.String("run_id", runID),
				zap.String("report", rep.ID),
				zap.Error(out.Err),
			)
			return
		}
		logger.Debug("report finished",
			zap.String("run_id", runID),
			zap.String("report", rep.ID),
			zap.Int("rows", len(out.Result.Rows)),
			zap.Duration("took", out.Took),
		)
	}()

	out.Result, out.Err = rep.Run(ds)
	return out
}
