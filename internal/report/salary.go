package report

import (
	"sort"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
)

// RankedEmployee is one row of the per-department salary rankings (Q1, Q11).
type RankedEmployee struct {
	Department string
	EmployeeID string
	FullName   string
	JobTitle   string
	Salary     float64
	Rank       int
}

// TopSalariesPerDepartment ranks employees by salary within each department
// using competition ranking and keeps rows with rank <= limit. Equal salaries
// share a rank, so a tie at the cutoff can return more than limit rows.
// Output: department asc, then rank asc, then name asc among equal salaries.
func TopSalariesPerDepartment(rows []dataset.Employee, limit int) []RankedEmployee {
	groups := groupBy(rows, byDepartment)

	var out []RankedEmployee
	for _, dept := range sortedKeys(groups) {
		members := append([]dataset.Employee(nil), groups[dept]...)
		sort.Slice(members, func(i, j int) bool {
			if members[i].SalaryINR != members[j].SalaryINR {
				return members[i].SalaryINR > members[j].SalaryINR
			}
			return members[i].FullName < members[j].FullName
		})

		ranks := CompetitionRanks(len(members), func(i int) bool {
			return members[i].SalaryINR == members[i-1].SalaryINR
		})

		for i, e := range members {
			if ranks[i] > limit {
				break
			}
			out = append(out, RankedEmployee{
				Department: dept,
				EmployeeID: e.EmployeeID,
				FullName:   e.FullName,
				JobTitle:   e.JobTitle,
				Salary:     e.SalaryINR,
				Rank:       ranks[i],
			})
		}
	}
	return out
}

// WorkModeAll labels the per-department rollup row in Q2.
const WorkModeAll = "all"

// DeptModeAvg is one row of Q2: average salary for a department and work
// mode, plus one rollup row per department with WorkMode == WorkModeAll.
type DeptModeAvg struct {
	Department string
	WorkMode   string
	AvgSalary  float64
	Headcount  int
}

// AvgSalaryByDeptAndMode computes Q2. Rows are ordered department asc, work
// modes alphabetically, with the department rollup row last in its block.
func AvgSalaryByDeptAndMode(rows []dataset.Employee) []DeptModeAvg {
	groups := groupBy(rows, byDepartment)

	var out []DeptModeAvg
	for _, dept := range sortedKeys(groups) {
		members := groups[dept]
		modes := groupBy(members, func(e dataset.Employee) string { return e.WorkMode })

		for _, mode := range sortedKeys(modes) {
			out = append(out, DeptModeAvg{
				Department: dept,
				WorkMode:   mode,
				AvgSalary:  Round2(Mean(salaries(modes[mode]))),
				Headcount:  len(modes[mode]),
			})
		}
		out = append(out, DeptModeAvg{
			Department: dept,
			WorkMode:   WorkModeAll,
			AvgSalary:  Round2(Mean(salaries(members))),
			Headcount:  len(members),
		})
	}
	return out
}

// AboveAvgEmployee is one row of Q6.
type AboveAvgEmployee struct {
	Department string
	EmployeeID string
	FullName   string
	Salary     float64
	DeptAvg    float64
}

// EmployeesAboveDeptAverage returns employees whose salary strictly exceeds
// their department's mean salary. Department asc, salary desc, name asc.
func EmployeesAboveDeptAverage(rows []dataset.Employee) []AboveAvgEmployee {
	groups := groupBy(rows, byDepartment)
	avgs := deptAverages(rows)

	var out []AboveAvgEmployee
	for _, dept := range sortedKeys(groups) {
		avg := avgs[dept]

		var above []dataset.Employee
		for _, e := range groups[dept] {
			if e.SalaryINR > avg {
				above = append(above, e)
			}
		}
		sort.Slice(above, func(i, j int) bool {
			if above[i].SalaryINR != above[j].SalaryINR {
				return above[i].SalaryINR > above[j].SalaryINR
			}
			return above[i].FullName < above[j].FullName
		})

		for _, e := range above {
			out = append(out, AboveAvgEmployee{
				Department: dept,
				EmployeeID: e.EmployeeID,
				FullName:   e.FullName,
				Salary:     e.SalaryINR,
				DeptAvg:    avg,
			})
		}
	}
	return out
}

// ModeDelta is one row of Q7: a work mode's average salary and the delta to
// the next row. The canonical row order is alphabetical by work mode, so the
// delta is this row's average minus the next alphabetical mode's average.
// The last row has no next row and HasDelta is false.
type ModeDelta struct {
	WorkMode  string
	AvgSalary float64
	Delta     float64
	HasDelta  bool
}

// SalaryDeltaByWorkMode computes Q7.
func SalaryDeltaByWorkMode(rows []dataset.Employee) []ModeDelta {
	groups := groupBy(rows, func(e dataset.Employee) string { return e.WorkMode })
	modes := sortedKeys(groups)

	out := make([]ModeDelta, 0, len(modes))
	for _, mode := range modes {
		out = append(out, ModeDelta{
			WorkMode:  mode,
			AvgSalary: Round2(Mean(salaries(groups[mode]))),
		})
	}
	for i := 0; i+1 < len(out); i++ {
		out[i].Delta = Round2(out[i].AvgSalary - out[i+1].AvgSalary)
		out[i].HasDelta = true
	}
	return out
}

// AboveAvgShare is one row of Q12: the share of a department's headcount
// earning strictly above the department mean.
type AboveAvgShare struct {
	Department string
	Above      int
	Total      int
	Percent    float64
}

// ShareAboveDeptAverage computes Q12. Departments where nobody is above
// average are absent, matching the inner-join composition of the queries.
func ShareAboveDeptAverage(rows []dataset.Employee) []AboveAvgShare {
	groups := groupBy(rows, byDepartment)
	avgs := deptAverages(rows)

	var out []AboveAvgShare
	for _, dept := range sortedKeys(groups) {
		members := groups[dept]
		avg := avgs[dept]

		above := 0
		for _, e := range members {
			if e.SalaryINR > avg {
				above++
			}
		}
		if above == 0 {
			continue
		}
		out = append(out, AboveAvgShare{
			Department: dept,
			Above:      above,
			Total:      len(members),
			Percent:    Round2(float64(above) / float64(len(members)) * 100),
		})
	}
	return out
}
