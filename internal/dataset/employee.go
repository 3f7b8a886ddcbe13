package dataset

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/apperror"
)

// Employee is one raw row of the hr_data table, exactly as loaded.
// Rows are never mutated after load; every report reads the same slice.
type Employee struct {
	EmployeeID        string  `gorm:"column:employee_id;primaryKey" csv:"employee_id" validate:"required"`
	FullName          string  `gorm:"column:full_name" csv:"full_name" validate:"required"`
	Department        string  `gorm:"column:department" csv:"department" validate:"required"`
	JobTitle          string  `gorm:"column:job_title" csv:"job_title" validate:"required"`
	HireDate          string  `gorm:"column:hire_date" csv:"hire_date" validate:"required"`
	Location          string  `gorm:"column:location" csv:"location"`
	PerformanceRating float64 `gorm:"column:performance_rating" csv:"performance_rating"`
	ExperienceYears   float64 `gorm:"column:experience_years" csv:"experience_years" validate:"gte=0"`
	Status            string  `gorm:"column:status" csv:"status" validate:"required"`
	WorkMode          string  `gorm:"column:work_mode" csv:"work_mode"`
	SalaryINR         float64 `gorm:"column:salary_inr" csv:"salary_inr" validate:"gte=0"`
}

func (Employee) TableName() string { return "hr_data" }

// RowWarning records a non-fatal, row-scoped problem found while loading or
// normalizing. The affected row is reported but the run continues.
type RowWarning struct {
	EmployeeID string
	Row        int // 1-indexed data row for CSV sources, 0 otherwise
	Err        error
}

// Dataset is the immutable handle passed to every report: the raw rows, the
// normalized rows (same identity by EmployeeID, minus rows whose hire_date
// failed to parse), and the warnings collected along the way.
type Dataset struct {
	Employees  []Employee
	Normalized []NormalizedEmployee
	Warnings   []RowWarning
}

var validate = func() *validator.Validate {
	v := validator.New()
	apperror.Init(v)
	return v
}()

// Build validates raw rows, normalizes the survivors, and assembles the
// immutable Dataset. Invalid rows are dropped with a warning; they never
// reach a report. Status is canonicalized to lower case here, once, for
// every source, so reports compare it with plain equality.
func Build(rows []Employee, loadWarnings []RowWarning) *Dataset {
	ds := &Dataset{
		Employees: make([]Employee, 0, len(rows)),
		Warnings:  append([]RowWarning(nil), loadWarnings...),
	}

	for _, e := range rows {
		e.Status = strings.ToLower(strings.TrimSpace(e.Status))
		if err := validate.Struct(e); err != nil {
			ds.Warnings = append(ds.Warnings, RowWarning{
				EmployeeID: e.EmployeeID,
				Err:        apperror.MapValidationError(err),
			})
			continue
		}
		ds.Employees = append(ds.Employees, e)
	}

	normalized, warns := NormalizeAll(ds.Employees)
	ds.Normalized = normalized
	ds.Warnings = append(ds.Warnings, warns...)
	return ds
}
