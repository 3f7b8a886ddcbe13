package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/apperror"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/contextutil"
)

// CSVSource loads hr_data from a headered CSV file.
type CSVSource struct {
	path   string
	logger *zap.Logger
}

func NewCSVSource(path string, logger ...*zap.Logger) *CSVSource {
	l := zap.L().Named("dataset.csv")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dataset.csv")
	}
	return &CSVSource{path: path, logger: l}
}

func (s *CSVSource) Load(ctx context.Context) ([]Employee, []RowWarning, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, apperror.Wrap(err, apperror.CodeSourceUnavailable, "open dataset "+s.path)
	}
	defer f.Close()

	rows, warns, err := parseCSV(ctx, f)
	if err != nil {
		return nil, nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("dataset loaded",
		zap.String("path", s.path),
		zap.Int("rows", len(rows)),
		zap.Int("warnings", len(warns)),
	)
	return rows, warns, nil
}

// parseCSV reads headered CSV into Employee rows. Mismatched column counts
// are padded or truncated with a warning, bad numeric cells invalidate only
// the affected row.
func parseCSV(ctx context.Context, r io.Reader) ([]Employee, []RowWarning, error) {
	reader := csv.NewReader(r)
	// Variable field counts are handled below; lazy quotes for real-world files.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, apperror.New(apperror.CodeInvalidInput, "empty file: no header row found")
		}
		return nil, nil, apperror.Wrap(err, apperror.CodeInvalidInput, "failed to read header row")
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var (
		rows        []Employee
		warns       []RowWarning
		rowNum      = 1 // 1-indexed, header is row 0
		headerCount = len(headers)
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++

		if err != nil {
			warns = append(warns, RowWarning{
				Row: rowNum,
				Err: apperror.Wrap(err, apperror.CodeInvalidInput, "parse error"),
			})
			continue
		}

		if len(record) != headerCount {
			warns = append(warns, RowWarning{
				Row: rowNum,
				Err: apperror.New(apperror.CodeInvalidInput,
					fmt.Sprintf("row has %d columns, expected %d", len(record), headerCount)),
			})
			if len(record) < headerCount {
				padded := make([]string, headerCount)
				copy(padded, record)
				record = padded
			} else {
				record = record[:headerCount]
			}
		}

		cells := make(map[string]string, headerCount)
		for i, h := range headers {
			cells[h] = strings.TrimSpace(record[i])
		}

		emp, err := employeeFromCells(cells)
		if err != nil {
			warns = append(warns, RowWarning{
				EmployeeID: cells["employee_id"],
				Row:        rowNum,
				Err:        err,
			})
			continue
		}
		rows = append(rows, emp)
	}

	if len(rows) == 0 {
		return nil, warns, apperror.New(apperror.CodeInvalidInput, "file contains no data rows")
	}
	return rows, warns, nil
}

func employeeFromCells(cells map[string]string) (Employee, error) {
	rating, err := parseFloatCell(cells, "performance_rating")
	if err != nil {
		return Employee{}, err
	}
	exp, err := parseFloatCell(cells, "experience_years")
	if err != nil {
		return Employee{}, err
	}
	salary, err := parseFloatCell(cells, "salary_inr")
	if err != nil {
		return Employee{}, err
	}

	return Employee{
		EmployeeID:        cells["employee_id"],
		FullName:          cells["full_name"],
		Department:        cells["department"],
		JobTitle:          cells["job_title"],
		HireDate:          cells["hire_date"],
		Location:          cells["location"],
		PerformanceRating: rating,
		ExperienceYears:   exp,
		Status:            cells["status"],
		WorkMode:          cells["work_mode"],
		SalaryINR:         salary,
	}, nil
}

func parseFloatCell(cells map[string]string, key string) (float64, error) {
	raw := cells[key]
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeInvalidInput, key+" is not numeric: "+raw)
	}
	return v, nil
}
