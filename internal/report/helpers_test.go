package report_test

import (
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
)

// emp builds a minimal active on-site employee for report tests; tests
// override the fields they care about.
func emp(id, name, dept string, salary float64) dataset.Employee {
	return dataset.Employee{
		EmployeeID: id,
		FullName:   name,
		Department: dept,
		JobTitle:   "Engineer",
		HireDate:   "10-09-2025",
		Location:   "Bengaluru, India",
		Status:     "active",
		WorkMode:   "on-site",
		SalaryINR:  salary,
	}
}

// scenarioRows is a small two-department fixture: three Engineering
// employees at 100000/90000/90000 and one Sales employee at 50000, one of
// the four resigned.
func scenarioRows() []dataset.Employee {
	a := emp("E1", "Asha", "Engineering", 100000)
	b := emp("E2", "Bala", "Engineering", 90000)
	c := emp("E3", "Chitra", "Engineering", 90000)
	d := emp("E4", "Dev", "Sales", 50000)
	c.Status = "resigned"
	return []dataset.Employee{a, b, c, d}
}
