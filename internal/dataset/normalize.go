package dataset

import (
	"strings"
	"time"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/shared/apperror"
)

// hire dates arrive as day-month-year with single or double digits, e.g. "10-09-2025".
const hireDateLayout = "2-1-2006"

// NormalizedEmployee mirrors the cl_hr_data view: same row identity as the
// raw Employee, hire_date parsed into a calendar date and location split into
// city and country.
type NormalizedEmployee struct {
	EmployeeID        string
	FullName          string
	Department        string
	JobTitle          string
	DateOfHire        time.Time
	City              string
	Country           string
	PerformanceRating float64
	ExperienceYears   float64
	Status            string
	WorkMode          string
	SalaryINR         float64
}

// ParseHireDate parses the raw day-month-year string.
func ParseHireDate(raw string) (time.Time, error) {
	t, err := time.Parse(hireDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperror.Wrap(err, apperror.CodeMalformedDate, "hire_date "+raw)
	}
	return t, nil
}

// SplitLocation splits "City, Country" at the first comma, trimming both
// sides. Without a comma the whole trimmed string becomes the city, the
// country stays empty and a MALFORMED_LOCATION error is returned alongside;
// the caller decides whether to keep the row (reports never read city or
// country, so we do).
func SplitLocation(raw string) (city, country string, err error) {
	idx := strings.Index(raw, ",")
	if idx < 0 {
		return strings.TrimSpace(raw), "", apperror.Wrap(
			apperror.ErrMalformedLocation, apperror.CodeMalformedLocation, "location "+raw)
	}
	return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:]), nil
}

// Normalize transforms one raw row. A malformed hire_date is fatal for the
// row; a malformed location is not.
func Normalize(e Employee) (NormalizedEmployee, []RowWarning, error) {
	var warns []RowWarning

	date, err := ParseHireDate(e.HireDate)
	if err != nil {
		return NormalizedEmployee{}, nil, err
	}

	city, country, locErr := SplitLocation(e.Location)
	if locErr != nil {
		warns = append(warns, RowWarning{EmployeeID: e.EmployeeID, Err: locErr})
	}

	return NormalizedEmployee{
		EmployeeID:        e.EmployeeID,
		FullName:          e.FullName,
		Department:        e.Department,
		JobTitle:          e.JobTitle,
		DateOfHire:        date,
		City:              city,
		Country:           country,
		PerformanceRating: e.PerformanceRating,
		ExperienceYears:   e.ExperienceYears,
		Status:            e.Status,
		WorkMode:          e.WorkMode,
		SalaryINR:         e.SalaryINR,
	}, warns, nil
}

// NormalizeAll maps Normalize over the table. Rows whose hire_date fails to
// parse are absent from the result but stay in the raw table, so only reports
// reading DateOfHire lose them.
func NormalizeAll(rows []Employee) ([]NormalizedEmployee, []RowWarning) {
	out := make([]NormalizedEmployee, 0, len(rows))
	var warns []RowWarning

	for _, e := range rows {
		n, rowWarns, err := Normalize(e)
		if err != nil {
			warns = append(warns, RowWarning{EmployeeID: e.EmployeeID, Err: err})
			continue
		}
		warns = append(warns, rowWarns...)
		out = append(out, n)
	}
	return out, warns
}
