package dataset

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/apperror"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/contextutil"
)

// GormSource loads hr_data from a Postgres table through GORM. Read-only:
// it only ever issues one SELECT.
type GormSource struct {
	db     *gorm.DB
	table  string
	logger *zap.Logger
}

func NewGormSource(db *gorm.DB, table string, logger ...*zap.Logger) *GormSource {
	l := zap.L().Named("dataset.gorm")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dataset.gorm")
	}
	if table == "" {
		table = Employee{}.TableName()
	}
	return &GormSource{db: db, table: table, logger: l}
}

func (s *GormSource) Load(ctx context.Context) ([]Employee, []RowWarning, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	var rows []Employee
	err := s.db.WithContext(ctx).
		Table(s.table).
		Find(&rows).Error
	if err != nil {
		logger.Error("load hr_data failed", zap.String("table", s.table), zap.Error(err))
		return nil, nil, apperror.Wrap(err, apperror.CodeSourceUnavailable, "query "+s.table)
	}

	logger.Info("dataset loaded",
		zap.String("table", s.table),
		zap.Int("rows", len(rows)),
	)
	return rows, nil, nil
}
