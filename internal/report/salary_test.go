package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/report"
)

func TestTopSalariesPerDepartment(t *testing.T) {
	t.Run("tie at the cutoff keeps all tied rows", func(t *testing.T) {
		rows := report.TopSalariesPerDepartment(scenarioRows(), 5)

		var eng []report.RankedEmployee
		for _, r := range rows {
			if r.Department == "Engineering" {
				eng = append(eng, r)
			}
		}
		assert.Len(t, eng, 3)
		assert.Equal(t, []int{1, 2, 2}, []int{eng[0].Rank, eng[1].Rank, eng[2].Rank})
		assert.Equal(t, 100000.0, eng[0].Salary)
	})

	t.Run("rank-with-ties law", func(t *testing.T) {
		var fixtures []dataset.Employee
		salaries := []float64{120, 110, 100, 100, 100, 90, 80}
		for i, s := range salaries {
			fixtures = append(fixtures, emp(string(rune('A'+i)), "N"+string(rune('A'+i)), "Ops", s))
		}

		rows := report.TopSalariesPerDepartment(fixtures, 5)

		// Sorted by salary desc, every salary >= the 5th-ranked salary present.
		for i := 1; i < len(rows); i++ {
			assert.GreaterOrEqual(t, rows[i-1].Salary, rows[i].Salary)
			assert.LessOrEqual(t, rows[i].Rank, 5)
		}
		for _, e := range fixtures {
			if e.SalaryINR >= 100 {
				found := false
				for _, r := range rows {
					if r.EmployeeID == e.EmployeeID {
						found = true
					}
				}
				assert.True(t, found, "employee %s with qualifying salary missing", e.EmployeeID)
			}
		}
	})

	t.Run("top 3 is a prefix-by-rank of top 5", func(t *testing.T) {
		rows := scenarioRows()
		top5 := report.TopSalariesPerDepartment(rows, 5)
		top3 := report.TopSalariesPerDepartment(rows, 3)

		byID := make(map[string]report.RankedEmployee)
		for _, r := range top5 {
			byID[r.EmployeeID] = r
		}
		for _, r := range top3 {
			full, ok := byID[r.EmployeeID]
			assert.True(t, ok)
			assert.Equal(t, full.Rank, r.Rank)
			assert.LessOrEqual(t, r.Rank, 3)
		}
	})

	t.Run("empty department never appears", func(t *testing.T) {
		assert.Empty(t, report.TopSalariesPerDepartment(nil, 5))
	})
}

func TestAvgSalaryByDeptAndMode(t *testing.T) {
	rows := scenarioRows()
	rows[0].WorkMode = "remote" // Asha

	got := report.AvgSalaryByDeptAndMode(rows)

	// Engineering: on-site, remote, all — then Sales: on-site, all.
	assert.Len(t, got, 5)
	assert.Equal(t, "on-site", got[0].WorkMode)
	assert.Equal(t, 90000.0, got[0].AvgSalary)
	assert.Equal(t, "remote", got[1].WorkMode)
	assert.Equal(t, 100000.0, got[1].AvgSalary)
	assert.Equal(t, report.WorkModeAll, got[2].WorkMode)
	assert.Equal(t, 93333.33, got[2].AvgSalary)
	assert.Equal(t, "Sales", got[3].Department)
	assert.Equal(t, report.WorkModeAll, got[4].WorkMode)
}

func TestEmployeesAboveDeptAverage(t *testing.T) {
	got := report.EmployeesAboveDeptAverage(scenarioRows())

	// Engineering mean is 93333.33: only Asha clears it. Sales' single
	// employee equals the mean, so nobody qualifies there.
	assert.Len(t, got, 1)
	assert.Equal(t, "E1", got[0].EmployeeID)

	avgs := map[string]float64{"Engineering": 93333.33, "Sales": 50000}
	for _, r := range got {
		assert.Greater(t, r.Salary, avgs[r.Department])
	}
}

func TestSalaryDeltaByWorkMode(t *testing.T) {
	rows := scenarioRows()
	rows[0].WorkMode = "remote"
	rows[1].WorkMode = "remote"

	got := report.SalaryDeltaByWorkMode(rows)

	// Canonical alphabetical order: on-site before remote.
	assert.Len(t, got, 2)
	assert.Equal(t, "on-site", got[0].WorkMode)
	assert.Equal(t, 70000.0, got[0].AvgSalary)
	assert.Equal(t, "remote", got[1].WorkMode)
	assert.Equal(t, 95000.0, got[1].AvgSalary)

	assert.True(t, got[0].HasDelta)
	assert.Equal(t, -25000.0, got[0].Delta)
	assert.False(t, got[1].HasDelta, "last row has no next row")
}

func TestShareAboveDeptAverage(t *testing.T) {
	got := report.ShareAboveDeptAverage(scenarioRows())

	// Sales is dropped: its only employee sits exactly at the mean.
	assert.Len(t, got, 1)
	assert.Equal(t, "Engineering", got[0].Department)
	assert.Equal(t, 1, got[0].Above)
	assert.Equal(t, 3, got[0].Total)
	assert.Equal(t, 33.33, got[0].Percent)
}
